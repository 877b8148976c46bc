// Package table converts between CSV and pipe-delimited Markdown
// tables, in both directions. The CSV side follows RFC-4180-like
// quoting: fields may be double-quote wrapped, with internal quotes
// escaped by doubling. Parsing is lenient: malformed input (such as an
// unbalanced quote) consumes to end of string and produces best-effort
// output rather than failing.
package table

import "strings"

// ParseCSVLine parses one CSV record with a character-scanning parser.
// Quoted fields preserve embedded commas and doubled quotes; unquoted
// fields are trimmed of surrounding whitespace.
func ParseCSVLine(line string) []string {
	var fields []string
	i := 0

	for {
		field, next := parseField(line, i)
		fields = append(fields, field)
		if next < 0 {
			return fields
		}
		i = next
	}
}

// parseField consumes one field starting at i. It returns the field
// value and the index after the following separator, or -1 when the
// record is exhausted.
func parseField(line string, i int) (string, int) {
	// Leading whitespace before an opening quote is not part of the field.
	j := i
	for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		j++
	}

	if j < len(line) && line[j] == '"' {
		return parseQuoted(line, j+1)
	}

	end := strings.IndexByte(line[i:], ',')
	if end < 0 {
		return strings.TrimSpace(line[i:]), -1
	}
	return strings.TrimSpace(line[i : i+end]), i + end + 1
}

// parseQuoted consumes a quoted field starting just after the opening
// quote. A doubled quote is an escaped literal quote. An unterminated
// field consumes to end of string.
func parseQuoted(line string, i int) (string, int) {
	var sb strings.Builder

	for i < len(line) {
		c := line[i]
		if c != '"' {
			sb.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(line) && line[i+1] == '"' {
			sb.WriteByte('"')
			i += 2
			continue
		}
		// Closing quote: skip to and past the next separator.
		i++
		for i < len(line) {
			if line[i] == ',' {
				return sb.String(), i + 1
			}
			i++
		}
		return sb.String(), -1
	}

	return sb.String(), -1
}

// quoteField wraps a value in double quotes, doubling internal quotes.
func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
