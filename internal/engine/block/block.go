package block

import (
	"errors"
	"strings"
)

// Errors returned by block construction.
var (
	ErrRangeInvalid      = errors.New("block range is invalid")
	ErrLineCountMismatch = errors.New("line count does not match block range")
	ErrEmbeddedNewline   = errors.New("block line contains a newline")
)

// Block is the line range a transformation operates on: either an
// explicit selection or the paragraph under the cursor. Start and End
// are 1-based inclusive positions in the surrounding document. The
// degenerate zero-line block is represented by End == Start-1.
type Block struct {
	// Lines is the block content. Lines never contain newline characters.
	Lines []string

	// Start is the 1-based document line of the first block line.
	Start int

	// End is the 1-based document line of the last block line (inclusive).
	End int

	// EndOfParagraph is true when End is the last line of a paragraph or
	// of the document. Some transformations (the line-continuation
	// toggle) treat the final line differently in that case.
	EndOfParagraph bool
}

// New creates a validated Block.
func New(lines []string, start, end int, endOfParagraph bool) (Block, error) {
	if start < 1 || end < start-1 {
		return Block{}, ErrRangeInvalid
	}
	if len(lines) != end-start+1 {
		return Block{}, ErrLineCountMismatch
	}
	for _, line := range lines {
		if strings.ContainsAny(line, "\n\r") {
			return Block{}, ErrEmbeddedNewline
		}
	}
	return Block{
		Lines:          lines,
		Start:          start,
		End:            end,
		EndOfParagraph: endOfParagraph,
	}, nil
}

// Len returns the number of lines in the block.
func (b Block) Len() int {
	return len(b.Lines)
}

// IsEmpty returns true for the degenerate zero-line block.
func (b Block) IsEmpty() bool {
	return len(b.Lines) == 0
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	lines := make([]string, len(b.Lines))
	copy(lines, b.Lines)
	b.Lines = lines
	return b
}

// WithLines returns a copy of the block carrying new content. Start,
// End and EndOfParagraph describe the original document range being
// replaced, so they are preserved even when the line count changes.
func (b Block) WithLines(lines []string) Block {
	b.Lines = lines
	return b
}

// IsBlank reports whether a line is empty or all whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
