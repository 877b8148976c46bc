package host

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/textmorph/internal/engine/buffer"
)

func TestSelectionResolves(t *testing.T) {
	buf := buffer.FromString("a\nb\nc\nd")
	s := NewSelector(buf)

	blk, err := s.Selection(2, 3)
	if err != nil {
		t.Fatalf("selection failed: %v", err)
	}

	want := []string{"b", "c"}
	if !reflect.DeepEqual(blk.Lines, want) {
		t.Errorf("expected %v, got %v", want, blk.Lines)
	}
	if blk.Start != 2 || blk.End != 3 {
		t.Errorf("expected range 2-3, got %d-%d", blk.Start, blk.End)
	}
}

func TestSelectionEndOfParagraphFlag(t *testing.T) {
	buf := buffer.FromString("a\nb\n\nc")
	s := NewSelector(buf)

	blk, _ := s.Selection(1, 2)
	if !blk.EndOfParagraph {
		t.Error("line 2 is followed by a blank, so the selection ends a paragraph")
	}

	blk, _ = s.Selection(1, 1)
	if blk.EndOfParagraph {
		t.Error("line 1 is followed by content, so the selection does not end a paragraph")
	}

	blk, _ = s.Selection(4, 4)
	if !blk.EndOfParagraph {
		t.Error("the last document line always ends a paragraph")
	}
}

func TestSelectionInvalid(t *testing.T) {
	buf := buffer.FromString("a\nb")
	s := NewSelector(buf)

	if _, err := s.Selection(2, 1); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection for end before start, got %v", err)
	}
	if _, err := s.Selection(1, 9); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection for out of range, got %v", err)
	}
	if _, err := s.Selection(0, 1); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection for zero start, got %v", err)
	}
}

func TestParagraphUnderCursor(t *testing.T) {
	buf := buffer.FromString("intro\n\nfirst\nsecond\nthird\n\noutro")
	s := NewSelector(buf)

	blk, err := s.Paragraph(4)
	if err != nil {
		t.Fatalf("paragraph failed: %v", err)
	}

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(blk.Lines, want) {
		t.Errorf("expected %v, got %v", want, blk.Lines)
	}
	if blk.Start != 3 || blk.End != 5 {
		t.Errorf("expected range 3-5, got %d-%d", blk.Start, blk.End)
	}
	if !blk.EndOfParagraph {
		t.Error("a resolved paragraph always ends at its last line")
	}
}

func TestParagraphAtDocumentEdges(t *testing.T) {
	buf := buffer.FromString("first\nsecond")
	s := NewSelector(buf)

	blk, err := s.Paragraph(1)
	if err != nil {
		t.Fatalf("paragraph failed: %v", err)
	}
	if blk.Start != 1 || blk.End != 2 {
		t.Errorf("expected range 1-2, got %d-%d", blk.Start, blk.End)
	}
}

func TestParagraphOnBlankLine(t *testing.T) {
	buf := buffer.FromString("a\n\nb")
	s := NewSelector(buf)

	if _, err := s.Paragraph(2); !errors.Is(err, ErrNoParagraph) {
		t.Errorf("expected ErrNoParagraph, got %v", err)
	}
}

func TestParagraphCursorOutOfRange(t *testing.T) {
	buf := buffer.FromString("a")
	s := NewSelector(buf)

	if _, err := s.Paragraph(0); !errors.Is(err, ErrNoParagraph) {
		t.Errorf("expected ErrNoParagraph, got %v", err)
	}
	if _, err := s.Paragraph(5); !errors.Is(err, ErrNoParagraph) {
		t.Errorf("expected ErrNoParagraph, got %v", err)
	}
}

func TestBufferHostSelectionThenParagraph(t *testing.T) {
	buf := buffer.FromString("a\nb\n\nc")
	h := NewBufferHost(buf)

	h.Select(1, 2)
	blk, err := h.Block()
	if err != nil {
		t.Fatalf("selection block failed: %v", err)
	}
	if blk.Start != 1 || blk.End != 2 {
		t.Errorf("expected selection 1-2, got %d-%d", blk.Start, blk.End)
	}

	h.MoveCursor(4)
	blk, err = h.Block()
	if err != nil {
		t.Fatalf("paragraph block failed: %v", err)
	}
	if blk.Start != 4 || blk.End != 4 {
		t.Errorf("expected paragraph 4-4, got %d-%d", blk.Start, blk.End)
	}
}

func TestBufferHostSetBlock(t *testing.T) {
	buf := buffer.FromString("a\nb\nc")
	h := NewBufferHost(buf)

	h.Select(2, 2)
	blk, _ := h.Block()
	blk = blk.WithLines([]string{"B1", "B2"})

	if err := h.SetBlock(blk); err != nil {
		t.Fatalf("set block failed: %v", err)
	}

	want := []string{"a", "B1", "B2", "c"}
	if got := buf.AllLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBufferHostClipboardRegister(t *testing.T) {
	h := NewBufferHost(buffer.FromString("a"))

	if err := h.CopyToClipboard("payload"); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if h.Register() != "payload" {
		t.Errorf("expected register to hold payload, got %q", h.Register())
	}
}

func TestBufferHostFailureBeforeTransform(t *testing.T) {
	h := NewBufferHost(buffer.FromString("a\n\nb"))
	h.MoveCursor(2)

	if _, err := h.Block(); !errors.Is(err, ErrNoParagraph) {
		t.Errorf("expected ErrNoParagraph, got %v", err)
	}
}
