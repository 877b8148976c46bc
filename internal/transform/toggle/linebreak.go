package toggle

import (
	"strings"

	"github.com/dshills/textmorph/internal/engine/block"
)

// breakSuffix is the line-continuation marker appended when adding.
const breakSuffix = ` \`

// HasBreak reports whether a line ends with a continuation backslash.
func HasBreak(line string) bool {
	return strings.HasSuffix(line, `\`)
}

// stripBreak removes a trailing backslash and the whitespace preceding
// it. Lines without the marker are returned unchanged.
func stripBreak(line string) string {
	if !HasBreak(line) {
		return line
	}
	return strings.TrimRight(line[:len(line)-1], " \t")
}

// AddBreaks appends the continuation marker to every line except blank
// lines, lines immediately followed by a blank line, and lines already
// ending in a backslash. When endOfParagraph is set, the final line is
// stripped of its marker afterwards: a paragraph's last line never
// carries a continuation.
func AddBreaks(lines []string, endOfParagraph bool) []string {
	out := make([]string, len(lines))

	for i, line := range lines {
		out[i] = line
		if block.IsBlank(line) {
			continue
		}
		if i+1 < len(lines) && block.IsBlank(lines[i+1]) {
			continue
		}
		if HasBreak(line) {
			continue
		}
		out[i] = line + breakSuffix
	}

	if endOfParagraph && len(out) > 0 {
		out[len(out)-1] = stripBreak(out[len(out)-1])
	}

	return out
}

// RemoveBreaks strips the continuation marker, and the whitespace
// before it, from every line that carries one.
func RemoveBreaks(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = stripBreak(line)
	}
	return out
}

// Breaks toggles continuation markers across a block, with the
// direction decided by the first line.
func Breaks(lines []string, endOfParagraph bool) []string {
	if len(lines) > 0 && HasBreak(lines[0]) {
		return RemoveBreaks(lines)
	}
	return AddBreaks(lines, endOfParagraph)
}
