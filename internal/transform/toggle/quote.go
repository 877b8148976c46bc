package toggle

import "strings"

// Quote marker strings.
const (
	quoteMarker = "> "
	quoteChar   = ">"
)

// Quote returns the blockquote toggle. Adding prepends "> " to every
// line; a blank line becomes ">" so the quote run stays contiguous.
// Removing strips one leading ">" plus at most one following space,
// preserving deeper quote nesting and inner indentation.
//
// When quoteBlankLines is false, blank lines are skipped when adding.
func Quote(quoteBlankLines bool) Toggle {
	return Toggle{
		Detect: func(line string) bool {
			return strings.HasPrefix(line, quoteChar)
		},
		Add: func(line string) string {
			if line == "" {
				return quoteChar
			}
			return quoteMarker + line
		},
		Remove: func(line string) string {
			line = strings.TrimPrefix(line, quoteChar)
			return strings.TrimPrefix(line, " ")
		},
		SkipBlank: !quoteBlankLines,
	}
}
