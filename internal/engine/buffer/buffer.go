package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange = errors.New("line out of range")
	ErrRangeInvalid   = errors.New("invalid line range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is a line-oriented document buffer. Lines are addressed with
// 1-based inclusive indices to match the Block data model. All methods
// are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	lineEnding LineEnding
	tabWidth   int
}

// New creates a new empty buffer (one empty line).
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		lineEnding: LineEndingLF,
		tabWidth:   4,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// FromString creates a buffer with initial content.
func FromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.lines = splitLines(s)
	return b
}

// FromReader creates a buffer from an io.Reader.
func FromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	b := New(opts...)
	b.lines = splitLines(string(data))
	return b, nil
}

// splitLines normalizes line endings to LF and splits into lines. A
// trailing newline does not produce an extra empty line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// Read Operations

// Text returns the full buffer content joined with the buffer's line
// ending, terminated by a final line ending.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	sep := b.lineEnding.Sequence()
	return strings.Join(b.lines, sep) + sep
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// Line returns the text of a specific line (without newline).
func (b *Buffer) Line(n int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n < 1 || n > len(b.lines) {
		return "", ErrLineOutOfRange
	}
	return b.lines[n-1], nil
}

// Lines returns a copy of the lines in the inclusive range [start, end].
// The degenerate range end == start-1 yields an empty slice.
func (b *Buffer) Lines(start, end int) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkRange(start, end); err != nil {
		return nil, err
	}

	out := make([]string, end-start+1)
	copy(out, b.lines[start-1:end])
	return out, nil
}

// AllLines returns a copy of every line in the buffer.
func (b *Buffer) AllLines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Write Operations

// ReplaceRange replaces the inclusive line range [start, end] with new
// lines. The replacement may have a different line count. The
// degenerate range end == start-1 inserts before start.
func (b *Buffer) ReplaceRange(start, end int, lines []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkRange(start, end); err != nil {
		return err
	}

	replaced := make([]string, 0, len(b.lines)-(end-start+1)+len(lines))
	replaced = append(replaced, b.lines[:start-1]...)
	replaced = append(replaced, lines...)
	replaced = append(replaced, b.lines[end:]...)

	if len(replaced) == 0 {
		replaced = []string{""}
	}
	b.lines = replaced
	return nil
}

// checkRange validates a 1-based inclusive range. Callers must hold at
// least a read lock.
func (b *Buffer) checkRange(start, end int) error {
	if start < 1 || end < start-1 {
		return ErrRangeInvalid
	}
	if start > len(b.lines)+1 || end > len(b.lines) {
		return ErrLineOutOfRange
	}
	return nil
}

// Buffer State

// IsEmpty returns true if the buffer holds a single empty line.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) == 1 && b.lines[0] == ""
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

// SetTabWidth sets the buffer's tab width.
func (b *Buffer) SetTabWidth(width int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if width > 0 {
		b.tabWidth = width
	}
}
