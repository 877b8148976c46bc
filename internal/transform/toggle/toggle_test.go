package toggle

import (
	"reflect"
	"testing"

	"github.com/dshills/textmorph/internal/config"
	"github.com/dshills/textmorph/internal/engine/block"
	"github.com/dshills/textmorph/internal/transform"
)

func TestQuoteAdd(t *testing.T) {
	got := Quote(true).Apply([]string{"alpha", "", "beta"})
	want := []string{"> alpha", ">", "> beta"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestQuoteRemove(t *testing.T) {
	got := Quote(true).Apply([]string{"> alpha", ">", "beta"})
	want := []string{"alpha", "", "beta"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestQuoteRemovePreservesNesting(t *testing.T) {
	got := Quote(true).Apply([]string{"> > deep"})
	want := []string{"> deep"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestQuoteToggleTwiceRestores(t *testing.T) {
	q := Quote(true)
	in := []string{"alpha", "", "beta"}

	if got := q.Apply(q.Apply(in)); !reflect.DeepEqual(got, in) {
		t.Errorf("double toggle changed input: %v", got)
	}
}

func TestQuoteSkipBlank(t *testing.T) {
	got := Quote(false).Apply([]string{"alpha", "", "beta"})
	want := []string{"> alpha", "", "> beta"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBulletAddSkipsBlanks(t *testing.T) {
	got := Bullet(true).Apply([]string{"one", "", "two"})
	want := []string{"- one", "", "- two"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBulletRemoveOnlyWherePresent(t *testing.T) {
	got := Bullet(true).Apply([]string{"- one", "plain", "- two"})
	want := []string{"one", "plain", "two"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBulletToggleTwiceRestores(t *testing.T) {
	b := Bullet(true)
	in := []string{"one", "", "two"}

	if got := b.Apply(b.Apply(in)); !reflect.DeepEqual(got, in) {
		t.Errorf("double toggle changed input: %v", got)
	}
}

func TestDecideMode(t *testing.T) {
	q := Quote(true)

	if q.DecideMode([]string{"> quoted"}) != ModeRemove {
		t.Error("expected ModeRemove for marked first line")
	}
	if q.DecideMode([]string{"plain"}) != ModeAdd {
		t.Error("expected ModeAdd for unmarked first line")
	}
}

func TestAddBreaks(t *testing.T) {
	in := []string{"one", "two", "", "three", "four"}
	got := AddBreaks(in, false)
	want := []string{`one \`, "two", "", `three \`, `four \`}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAddBreaksSkipsExisting(t *testing.T) {
	in := []string{`already \`, "next"}
	got := AddBreaks(in, false)
	want := []string{`already \`, `next \`}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAddBreaksEndOfParagraph(t *testing.T) {
	got := AddBreaks([]string{"only"}, true)
	want := []string{"only"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("end-of-paragraph line must not keep a continuation, got %v", got)
	}
}

func TestRemoveBreaks(t *testing.T) {
	in := []string{`one \`, `two  \`, "three"}
	got := RemoveBreaks(in)
	want := []string{"one", "two", "three"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBreaksToggleTwiceRestores(t *testing.T) {
	in := []string{"one", "two", "three"}

	if got := Breaks(Breaks(in, false), false); !reflect.DeepEqual(got, in) {
		t.Errorf("double toggle changed input: %v", got)
	}
}

func TestHandlerQuote(t *testing.T) {
	h := NewHandler()
	ctx := transform.NewContext(config.Default(), nil)
	blk, _ := block.New([]string{"hello"}, 1, 1, true)

	res := h.Handle(ActionQuote, blk, ctx)
	if !res.IsOK() {
		t.Fatalf("quote failed: %v", res.Err)
	}
	if res.Lines[0] != "> hello" {
		t.Errorf("expected %q, got %q", "> hello", res.Lines[0])
	}
}

func TestHandlerBreakEndOfParagraph(t *testing.T) {
	h := NewHandler()
	ctx := transform.NewContext(config.Default(), nil)
	blk, _ := block.New([]string{"single line"}, 1, 1, true)

	res := h.Handle(ActionBreak, blk, ctx)
	if !res.IsOK() {
		t.Fatalf("break failed: %v", res.Err)
	}
	if HasBreak(res.Lines[0]) {
		t.Errorf("end-of-paragraph single line must not carry a continuation, got %q", res.Lines[0])
	}
}

func TestHandlerCanHandle(t *testing.T) {
	h := NewHandler()
	for _, action := range h.Actions() {
		if !h.CanHandle(action) {
			t.Errorf("handler should claim %s", action)
		}
	}
	if h.CanHandle("block.wrap") {
		t.Error("handler should not claim block.wrap")
	}
}
