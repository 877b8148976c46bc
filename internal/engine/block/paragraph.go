package block

// ParagraphFunc transforms one paragraph (a run of non-blank lines)
// into its replacement lines. It is never called with blank lines or an
// empty slice.
type ParagraphFunc func(paragraph []string) []string

// MapParagraphs splits lines into paragraphs at blank-line boundaries,
// applies fn to each paragraph independently, and reassembles the
// result. Blank separator lines are never passed to fn and are emitted
// unchanged, in their original count and position, so mapping the
// identity function reproduces the input exactly.
func MapParagraphs(lines []string, fn ParagraphFunc) []string {
	out := make([]string, 0, len(lines))
	var para []string

	flush := func() {
		if len(para) == 0 {
			return
		}
		out = append(out, fn(para)...)
		para = nil
	}

	for _, line := range lines {
		if IsBlank(line) {
			flush()
			out = append(out, line)
			continue
		}
		para = append(para, line)
	}
	flush()

	return out
}
