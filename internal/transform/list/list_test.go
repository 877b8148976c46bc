package list

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/dshills/textmorph/internal/config"
	"github.com/dshills/textmorph/internal/engine/block"
	"github.com/dshills/textmorph/internal/transform"
)

func TestParseItem(t *testing.T) {
	item, ok := ParseItem("  12. rest of line")
	if !ok {
		t.Fatal("expected a list item")
	}

	if item.Indent.Raw != "  " {
		t.Errorf("expected indent %q, got %q", "  ", item.Indent.Raw)
	}
	if item.Number != "12" {
		t.Errorf("expected number 12, got %q", item.Number)
	}
	if item.Rest != "rest of line" {
		t.Errorf("expected rest %q, got %q", "rest of line", item.Rest)
	}
}

func TestParseItemRejects(t *testing.T) {
	for _, line := range []string{"no item", "1st place", "2.nospace", ""} {
		if _, ok := ParseItem(line); ok {
			t.Errorf("%q should not parse as a list item", line)
		}
	}
}

func TestNumberPlainLines(t *testing.T) {
	got := Number([]string{"alpha", "beta", "gamma"})
	want := []string{"1. alpha", "2. beta", "3. gamma"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNumberRewritesExisting(t *testing.T) {
	got := Number([]string{"alpha", "7. beta", "gamma"})
	want := []string{"1. alpha", "2. beta", "3. gamma"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNumberSkipsIndented(t *testing.T) {
	got := Number([]string{"alpha", "  indented", "beta"})
	want := []string{"1. alpha", "  indented", "2. beta"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("indented lines must not be numbered or advance the counter, got %v", got)
	}
}

func TestNumberTogglesToUnnumber(t *testing.T) {
	got := Number([]string{"1. alpha", "  2. nested", "plain"})
	want := []string{"alpha", "  nested", "plain"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNumberMonotonic(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}
	prev := 0
	for _, line := range Number(lines) {
		num, _, found := strings.Cut(line, ".")
		if !found {
			t.Fatalf("line %q is not numbered", line)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			t.Fatalf("bad number in %q: %v", line, err)
		}
		if n != prev+1 {
			t.Errorf("expected %d, got %d", prev+1, n)
		}
		prev = n
	}
}

func TestRenumberNested(t *testing.T) {
	in := []string{
		"5. A",
		"   9. A.1",
		"   9. A.2",
		"7. B",
	}
	got := Renumber(in, block.WidthRendered, 4)
	want := []string{
		"1.  A",
		"   1.  A.1",
		"   2.  A.2",
		"2.  B",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRenumberEncroachmentResets(t *testing.T) {
	in := []string{
		"1. A",
		"   1. A.1",
		"2. B",
		"   5. B.1",
	}
	got := Renumber(in, block.WidthRendered, 4)

	if got[3] != "   1.  B.1" {
		t.Errorf("nested counter should reset after de-indent, got %q", got[3])
	}
}

func TestRenumberNonItemsUntouched(t *testing.T) {
	in := []string{"1. A", "plain text", "3. C"}
	got := Renumber(in, block.WidthRendered, 4)

	if got[1] != "plain text" {
		t.Errorf("non-item line changed: %q", got[1])
	}
	if got[2] != "2.  C" {
		t.Errorf("expected %q, got %q", "2.  C", got[2])
	}
}

func TestRenumberPadding(t *testing.T) {
	in := make([]string, 12)
	for i := range in {
		in[i] = "1. x"
	}
	got := Renumber(in, block.WidthRendered, 4)

	if got[8] != "9.  x" {
		t.Errorf("expected %q, got %q", "9.  x", got[8])
	}
	if got[9] != "10. x" {
		t.Errorf("expected %q, got %q", "10. x", got[9])
	}
}

func TestRenumberWidthModes(t *testing.T) {
	// With rendered width a tab indents 4 columns; with raw count it is
	// a single character.
	in := []string{
		"1. A",
		"\t1. nested",
		" 1. shallow",
	}

	rendered := Renumber(in, block.WidthRendered, 4)
	// Tab depth 4, then space depth 1 encroaches and resets it.
	if rendered[1] != "\t1.  nested" {
		t.Errorf("rendered mode: got %q", rendered[1])
	}

	raw := Renumber(in, block.WidthRaw, 4)
	// Raw depth 1 for both the tab and space lines: same counter.
	if raw[2] != " 2.  shallow" {
		t.Errorf("raw mode should share the depth-1 counter, got %q", raw[2])
	}
}

func TestHandlerRenumber(t *testing.T) {
	h := NewHandler()
	ctx := transform.NewContext(config.Default(), nil)
	blk, _ := block.New([]string{"3. one", "3. two"}, 1, 2, true)

	res := h.Handle(ActionRenumber, blk, ctx)
	if !res.IsOK() {
		t.Fatalf("renumber failed: %v", res.Err)
	}

	want := []string{"1.  one", "2.  two"}
	if !reflect.DeepEqual(res.Lines, want) {
		t.Errorf("expected %v, got %v", want, res.Lines)
	}
}
