package host

import (
	"github.com/dshills/textmorph/internal/engine/block"
	"github.com/dshills/textmorph/internal/engine/buffer"
)

// Selector resolves line ranges over a buffer into Blocks.
type Selector struct {
	buf *buffer.Buffer
}

// NewSelector creates a selector over the buffer.
func NewSelector(buf *buffer.Buffer) *Selector {
	return &Selector{buf: buf}
}

// Selection resolves an explicit 1-based inclusive line range. The
// range must lie within the document and end must not precede start.
func (s *Selector) Selection(start, end int) (block.Block, error) {
	if start < 1 || end < start || end > s.buf.LineCount() {
		return block.Block{}, ErrInvalidSelection
	}

	lines, err := s.buf.Lines(start, end)
	if err != nil {
		return block.Block{}, ErrInvalidSelection
	}

	return block.New(lines, start, end, s.endsParagraph(end))
}

// Paragraph resolves the paragraph containing the cursor line: the
// maximal run of non-blank lines around it. A cursor outside the
// document or on a blank line yields ErrNoParagraph.
func (s *Selector) Paragraph(cursor int) (block.Block, error) {
	count := s.buf.LineCount()
	if cursor < 1 || cursor > count {
		return block.Block{}, ErrNoParagraph
	}

	line, err := s.buf.Line(cursor)
	if err != nil || block.IsBlank(line) {
		return block.Block{}, ErrNoParagraph
	}

	start := cursor
	for start > 1 {
		prev, _ := s.buf.Line(start - 1)
		if block.IsBlank(prev) {
			break
		}
		start--
	}

	end := cursor
	for end < count {
		next, _ := s.buf.Line(end + 1)
		if block.IsBlank(next) {
			break
		}
		end++
	}

	lines, err := s.buf.Lines(start, end)
	if err != nil {
		return block.Block{}, ErrNoParagraph
	}

	// A paragraph always ends at its own last line.
	return block.New(lines, start, end, true)
}

// endsParagraph reports whether a document line is the last line of a
// paragraph or of the document.
func (s *Selector) endsParagraph(line int) bool {
	if line >= s.buf.LineCount() {
		return true
	}
	next, err := s.buf.Line(line + 1)
	if err != nil {
		return true
	}
	return block.IsBlank(next)
}
