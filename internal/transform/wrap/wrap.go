// Package wrap implements greedy word wrapping and its inverse join for
// a single logical paragraph, with indent preservation.
package wrap

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/textmorph/internal/engine/block"
)

// Wrap splits text on whitespace runs and greedily packs the words onto
// lines no wider than width. A single word wider than width is placed
// alone on its own line; it is never split. A non-positive width
// degrades to one word per line. Empty or all-whitespace text yields a
// nil slice.
//
// Widths are measured in rendered columns, not bytes.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	cur := words[0]
	curWidth := uniseg.StringWidth(cur)

	for _, word := range words[1:] {
		w := uniseg.StringWidth(word)
		if width > 0 && curWidth+1+w <= width {
			cur += " " + word
			curWidth += 1 + w
			continue
		}
		lines = append(lines, cur)
		cur = word
		curWidth = w
	}
	lines = append(lines, cur)

	return lines
}

// Unwrap joins lines into a single word stream separated by single
// spaces. Leading and trailing whitespace on each line is dropped and
// internal multi-space runs collapse to one space, so the word stream
// is preserved but not the original spacing.
func Unwrap(lines []string) string {
	return strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
}

// Options controls paragraph wrapping.
type Options struct {
	// Width is the target column.
	Width int

	// RetainIndent re-prepends the first line's indent to every
	// produced line and subtracts its rendered width from Width before
	// wrapping. When false only the first produced line receives the
	// indent.
	RetainIndent bool

	// NormalizeIndent expands tabs in the retained indent to spaces.
	NormalizeIndent bool

	// TabWidth is the rendered width of a tab.
	TabWidth int
}

// Paragraph rewraps one paragraph (a run of non-blank lines) according
// to opts.
func Paragraph(lines []string, opts Options) []string {
	if len(lines) == 0 {
		return nil
	}

	indent := block.Leading(lines[0])
	text := Unwrap(lines)
	if text == "" {
		return nil
	}

	if !opts.RetainIndent {
		wrapped := Wrap(text, opts.Width)
		if len(wrapped) > 0 && indent.Raw != "" {
			wrapped[0] = indent.Raw + wrapped[0]
		}
		return wrapped
	}

	prefix := indent.Raw
	if opts.NormalizeIndent {
		prefix = indent.Normalized(opts.TabWidth)
	}

	wrapped := Wrap(text, opts.Width-indent.Width(opts.TabWidth))
	for i, line := range wrapped {
		wrapped[i] = prefix + line
	}
	return wrapped
}
