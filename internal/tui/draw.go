package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// drawText renders text at (x, y) and returns the column after the
// last cell written. Grapheme clusters are kept intact so combining
// characters and wide runes render correctly.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += g.Width()
	}
	return x
}

// fillLine pads a row with spaces from x to the screen width.
func fillLine(s tcell.Screen, x, y int, style tcell.Style) {
	width, _ := s.Size()
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}
