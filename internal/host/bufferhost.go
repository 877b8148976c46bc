package host

import (
	"sync"

	"github.com/dshills/textmorph/internal/engine/block"
	"github.com/dshills/textmorph/internal/engine/buffer"
)

// BufferHost is an in-memory Host over an engine buffer. The "cursor"
// and "selection" are plain fields set by the front end before asking
// for a block; the clipboard is an internal register.
type BufferHost struct {
	mu  sync.Mutex
	buf *buffer.Buffer
	sel *Selector

	cursor    int
	selStart  int
	selEnd    int
	selecting bool

	register string
}

// NewBufferHost creates a host over the buffer with the cursor on line 1.
func NewBufferHost(buf *buffer.Buffer) *BufferHost {
	return &BufferHost{
		buf:    buf,
		sel:    NewSelector(buf),
		cursor: 1,
	}
}

// Buffer returns the underlying buffer.
func (h *BufferHost) Buffer() *buffer.Buffer {
	return h.buf
}

// MoveCursor positions the cursor and clears any selection.
func (h *BufferHost) MoveCursor(line int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursor = line
	h.selecting = false
}

// Select marks an explicit line range as the active selection.
func (h *BufferHost) Select(start, end int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.selStart = start
	h.selEnd = end
	h.selecting = true
}

// ClearSelection drops the active selection, reverting to
// paragraph-under-cursor resolution.
func (h *BufferHost) ClearSelection() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.selecting = false
}

// Block resolves the active selection, or the paragraph under the
// cursor when no selection is active.
func (h *BufferHost) Block() (block.Block, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.selecting {
		return h.sel.Selection(h.selStart, h.selEnd)
	}
	return h.sel.Paragraph(h.cursor)
}

// SetBlock replaces the block's document range with its lines.
func (h *BufferHost) SetBlock(blk block.Block) error {
	return h.buf.ReplaceRange(blk.Start, blk.End, blk.Lines)
}

// CopyToClipboard stores text in the host register.
func (h *BufferHost) CopyToClipboard(text string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.register = text
	return nil
}

// Copy implements transform.Clipboard.
func (h *BufferHost) Copy(text string) error {
	return h.CopyToClipboard(text)
}

// Register returns the last text copied to the clipboard.
func (h *BufferHost) Register() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.register
}
