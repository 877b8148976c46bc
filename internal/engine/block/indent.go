package block

import "strings"

// DefaultTabWidth is the rendered width of a tab when no tab width is
// configured.
const DefaultTabWidth = 4

// WidthMode selects how indentation depth is measured when comparing
// indent levels.
type WidthMode uint8

const (
	// WidthRendered measures the on-screen width: a tab counts as the
	// tab width, any other whitespace character counts as one column.
	WidthRendered WidthMode = iota

	// WidthRaw measures the raw character count of the leading
	// whitespace, with no tab expansion. Kept as a compatibility mode
	// for content authored against raw-count semantics.
	WidthRaw
)

// String returns the mode name as used in configuration files.
func (m WidthMode) String() string {
	if m == WidthRaw {
		return "raw"
	}
	return "rendered"
}

// Indent is the leading whitespace of a line in its raw string form.
type Indent struct {
	Raw string
}

// Leading returns the indent of a line.
func Leading(line string) Indent {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return Indent{Raw: line[:i]}
		}
	}
	return Indent{Raw: line}
}

// Count returns the raw character count of the indent.
func (in Indent) Count() int {
	return len(in.Raw)
}

// Width returns the rendered width of the indent: tabWidth columns per
// tab, one column per other whitespace character. A non-positive
// tabWidth falls back to DefaultTabWidth.
func (in Indent) Width(tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	width := 0
	for _, r := range in.Raw {
		if r == '\t' {
			width += tabWidth
		} else {
			width++
		}
	}
	return width
}

// Measure returns the indent depth under the given mode.
func (in Indent) Measure(mode WidthMode, tabWidth int) int {
	if mode == WidthRaw {
		return in.Count()
	}
	return in.Width(tabWidth)
}

// Normalized returns the indent with tabs expanded to spaces at the
// given tab width.
func (in Indent) Normalized(tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if !strings.Contains(in.Raw, "\t") {
		return in.Raw
	}
	var sb strings.Builder
	for _, r := range in.Raw {
		if r == '\t' {
			sb.WriteString(strings.Repeat(" ", tabWidth))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
