package table

import "strings"

// IsMarkdownTable reports whether a line looks like a Markdown table
// row: it starts and ends with a pipe. It decides the conversion
// direction for the toggle entry point.
func IsMarkdownTable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) >= 2 && strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

// ToMarkdown converts CSV lines to a Markdown table. The first line is
// the header row; a separator row with one "---" per header column is
// synthesized after it. Ragged rows are emitted as-is, with no
// column-count validation.
func ToMarkdown(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}

	header := ParseCSVLine(lines[0])
	out := make([]string, 0, len(lines)+1)
	out = append(out, markdownRow(header))
	out = append(out, "|"+strings.Repeat("---|", len(header)))

	for _, line := range lines[1:] {
		out = append(out, markdownRow(ParseCSVLine(line)))
	}

	return out
}

// markdownRow renders fields as a pipe-delimited table row.
func markdownRow(fields []string) string {
	return "| " + strings.Join(fields, " | ") + " |"
}

// ToCSV converts Markdown table lines to CSV. The second line (the
// separator row) is discarded. Every cell is trimmed and quoted, with
// internal quotes doubled. Markdown inline syntax is not un-escaped.
func ToCSV(lines []string) []string {
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		if i == 1 {
			continue // separator row
		}
		cells := splitRow(line)
		for j, cell := range cells {
			cells[j] = quoteField(cell)
		}
		out = append(out, strings.Join(cells, ","))
	}

	return out
}

// splitRow strips the outer pipes from a table row and splits on the
// internal ones, trimming each cell.
func splitRow(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")

	cells := strings.Split(s, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}
