package toggle

import "strings"

// bulletMarker is the unordered-list item prefix.
const bulletMarker = "- "

// Bullet returns the bullet-list toggle. Adding prepends "- " to every
// non-blank line when skipBlank is set (blank lines remain blank, not
// bulleted); removing strips the marker only where present.
func Bullet(skipBlank bool) Toggle {
	return Toggle{
		Detect: func(line string) bool {
			return strings.HasPrefix(line, bulletMarker)
		},
		Add: func(line string) string {
			return bulletMarker + line
		},
		Remove: func(line string) string {
			return strings.TrimPrefix(line, bulletMarker)
		},
		SkipBlank: skipBlank,
	}
}
