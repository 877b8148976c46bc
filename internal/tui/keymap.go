package tui

// keymap maps action keys to transformation names. Movement and mode
// keys are handled separately.
var keymap = map[rune]string{
	'w':  "block.wrap",
	'u':  "block.unwrap",
	'q':  "block.quote",
	'b':  "block.bullet",
	'n':  "block.number",
	'N':  "block.renumber",
	'r':  "block.rule",
	'c':  "block.code",
	'm':  "block.comment",
	't':  "block.table",
	'\\': "block.break",
}
