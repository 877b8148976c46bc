// Package fence implements the symmetric enclose/un-enclose of a block
// with start and end marker lines: horizontal rules, fenced code
// blocks, HTML block wrappers and HTML comments. Optional blank-line
// padding keeps block-level HTML recognized as raw blocks by Markdown.
package fence

import "github.com/dshills/textmorph/internal/engine/block"

// Fence is a delimiter pair enclosing a block.
type Fence struct {
	// Start is the opening marker line (matched exactly).
	Start string

	// End is the closing marker line (matched exactly).
	End string

	// BlankAfterStart inserts a blank line after Start, and removes one
	// when unfencing.
	BlankAfterStart bool

	// BlankBeforeEnd inserts a blank line before End, and removes one
	// when unfencing.
	BlankBeforeEnd bool
}

// Enclosed reports whether the block already starts with this fence's
// opening marker, which decides the toggle direction.
func (f Fence) Enclosed(lines []string) bool {
	return len(lines) > 0 && lines[0] == f.Start
}

// Toggle encloses the block in the fence, or removes the fence when the
// first line already matches the start marker.
func (f Fence) Toggle(lines []string) []string {
	if f.Enclosed(lines) {
		return f.remove(lines)
	}
	return f.add(lines)
}

func (f Fence) add(lines []string) []string {
	out := make([]string, 0, len(lines)+4)

	out = append(out, f.Start)
	if f.BlankAfterStart {
		out = append(out, "")
	}
	out = append(out, lines...)
	if f.BlankBeforeEnd {
		out = append(out, "")
	}
	out = append(out, f.End)

	return out
}

func (f Fence) remove(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	out = out[1:] // start marker
	if f.BlankAfterStart && len(out) > 0 && block.IsBlank(out[0]) {
		out = out[1:]
	}

	if n := len(out); n > 0 && out[n-1] == f.End {
		out = out[:n-1]
		if m := len(out); f.BlankBeforeEnd && m > 0 && block.IsBlank(out[m-1]) {
			out = out[:m-1]
		}
	}

	return out
}

// Preset fences.

// Rule returns the horizontal-rule fence.
func Rule() Fence {
	return Fence{Start: "___", End: "___"}
}

// Code returns a fenced code block. The language tag may be empty.
func Code(lang string) Fence {
	return Fence{Start: "```" + lang, End: "```"}
}

// HTMLBlock returns a block-level HTML wrapper with forced blank-line
// padding so Markdown treats the content as a raw HTML block.
func HTMLBlock(tag string) Fence {
	return Fence{
		Start:           "<" + tag + ">",
		End:             "</" + tag + ">",
		BlankAfterStart: true,
		BlankBeforeEnd:  true,
	}
}

// Comment returns the HTML comment fence.
func Comment() Fence {
	return Fence{Start: "<!--", End: "-->"}
}
