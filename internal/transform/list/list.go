// Package list implements stateful renumbering of ordered-list items:
// a flat mode driven by a single counter over non-indented lines, and
// an indent-aware mode keeping an independent counter per indent level,
// terminated when a later line's indent encroaches on the level.
package list

import (
	"fmt"
	"regexp"

	"github.com/dshills/textmorph/internal/engine/block"
)

// itemPattern matches an ordered-list item at any indent, capturing the
// indent, the number and the remainder after the separator.
var itemPattern = regexp.MustCompile(`^([ \t]*)(\d+)\.\s+(.*)$`)

// Item is one parsed ordered-list line.
type Item struct {
	Indent block.Indent
	Number string
	Rest   string
}

// ParseItem parses a line as an ordered-list item. The second return is
// false when the line does not match the `<digits>. <rest>` pattern.
func ParseItem(line string) (Item, bool) {
	m := itemPattern.FindStringSubmatch(line)
	if m == nil {
		return Item{}, false
	}
	return Item{
		Indent: block.Indent{Raw: m[1]},
		Number: m[2],
		Rest:   m[3],
	}, true
}

// IsNumbered reports whether the first line of a block is an
// ordered-list item (at any indent). It decides the toggle direction
// for the flat mode.
func IsNumbered(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	_, ok := ParseItem(lines[0])
	return ok
}

// Number applies the flat toggle. When the first line is already
// numbered the whole block is un-numbered: the `<digits>. ` prefix is
// stripped from every matching line at any indent. Otherwise every
// non-indented, non-blank line is numbered by a single counter starting
// at 1; existing numbers are rewritten in sequence. Indented lines are
// left untouched and do not advance the counter.
func Number(lines []string) []string {
	if IsNumbered(lines) {
		return Unnumber(lines)
	}

	out := make([]string, len(lines))
	counter := 1

	for i, line := range lines {
		out[i] = line
		if block.IsBlank(line) || block.Leading(line).Raw != "" {
			continue
		}
		if item, ok := ParseItem(line); ok {
			out[i] = fmt.Sprintf("%d. %s", counter, item.Rest)
		} else {
			out[i] = fmt.Sprintf("%d. %s", counter, line)
		}
		counter++
	}

	return out
}

// Unnumber strips the `<digits>. ` prefix from every matching line at
// any indent, keeping the indent itself.
func Unnumber(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if item, ok := ParseItem(line); ok {
			out[i] = item.Indent.Raw + item.Rest
		} else {
			out[i] = line
		}
	}
	return out
}

// Renumber renumbers nested ordered lists, keeping an independent
// counter per indent depth. Any counter tracked at a depth greater than
// the current line's indent resets to 1 (encroachment: a de-indented
// line terminates the deeper list). Lines that are not list items are
// left unchanged but still trigger resets. Rewritten items use a
// number-dot field padded to four characters so nested text stays
// aligned.
//
// Indent depth is measured per mode: rendered width (tab-expanded, the
// default) or raw character count.
func Renumber(lines []string, mode block.WidthMode, tabWidth int) []string {
	out := make([]string, len(lines))
	counters := map[int]int{}

	for i, line := range lines {
		out[i] = line
		if block.IsBlank(line) {
			continue
		}

		depth := block.Leading(line).Measure(mode, tabWidth)
		for d := range counters {
			if d > depth {
				counters[d] = 1
			}
		}

		item, ok := ParseItem(line)
		if !ok {
			continue
		}

		n, tracked := counters[depth]
		if !tracked {
			n = 1
		}
		out[i] = item.Indent.Raw + fmt.Sprintf("%-4s", fmt.Sprintf("%d.", n)) + item.Rest
		counters[depth] = n + 1
	}

	return out
}
