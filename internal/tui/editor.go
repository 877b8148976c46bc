package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textmorph/internal/app"
	"github.com/dshills/textmorph/internal/host"
)

// Editor is the interactive terminal session.
type Editor struct {
	app    *app.App
	host   *host.BufferHost
	screen tcell.Screen

	cursor int // 1-based current line
	top    int // 1-based first visible line
	visual bool
	anchor int // selection anchor line in visual mode
	status string
}

// New creates an editor over a real terminal screen.
func New(a *app.App, h *host.BufferHost) (*Editor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(a, h, screen), nil
}

// NewWithScreen creates an editor over an existing screen.
func NewWithScreen(a *app.App, h *host.BufferHost, screen tcell.Screen) *Editor {
	return &Editor{
		app:    a,
		host:   h,
		screen: screen,
		cursor: 1,
		top:    1,
	}
}

// Run initializes the screen and processes events until the user
// quits with Ctrl-Q or Ctrl-C.
func (e *Editor) Run() error {
	if err := e.screen.Init(); err != nil {
		return err
	}
	defer e.screen.Fini()

	e.status = "j/k move, V select, w wrap, q quote, Ctrl-Q quit"

	for {
		e.draw()

		ev := e.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventKey:
			if e.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey processes one key event and reports whether to quit.
func (e *Editor) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		e.exitVisual()
		return false
	case tcell.KeyUp:
		e.moveCursor(-1)
		return false
	case tcell.KeyDown:
		e.moveCursor(1)
		return false
	case tcell.KeyRune:
		// handled below
	default:
		return false
	}

	switch r := ev.Rune(); r {
	case 'j':
		e.moveCursor(1)
	case 'k':
		e.moveCursor(-1)
	case 'g':
		e.cursor = 1
	case 'G':
		e.cursor = e.host.Buffer().LineCount()
	case 'V':
		if e.visual {
			e.exitVisual()
		} else {
			e.visual = true
			e.anchor = e.cursor
		}
	default:
		if action, ok := keymap[r]; ok {
			e.apply(action)
		}
	}
	return false
}

// moveCursor moves the cursor by delta, clamped to the document.
func (e *Editor) moveCursor(delta int) {
	e.cursor += delta
	if e.cursor < 1 {
		e.cursor = 1
	}
	if count := e.host.Buffer().LineCount(); e.cursor > count {
		e.cursor = count
	}
}

// apply runs a transformation against the current selection or the
// paragraph under the cursor.
func (e *Editor) apply(action string) {
	if e.visual {
		start, end := e.anchor, e.cursor
		if end < start {
			start, end = end, start
		}
		e.host.Select(start, end)
	} else {
		e.host.ClearSelection()
		e.host.MoveCursor(e.cursor)
	}

	res := e.app.Apply(e.host, action)
	switch {
	case res.IsError():
		e.status = fmt.Sprintf("%s: %v", action, res.Err)
	case res.IsOK():
		e.status = action
		if res.Clipboard != "" {
			e.status = action + " (copied)"
		}
	default:
		e.status = action + ": no change"
	}

	e.exitVisual()
	e.moveCursor(0) // re-clamp after the document changed
}

// exitVisual leaves visual mode and drops the host selection.
func (e *Editor) exitVisual() {
	e.visual = false
	e.host.ClearSelection()
}

// draw renders the visible document slice and the status line.
func (e *Editor) draw() {
	e.screen.Clear()

	width, height := e.screen.Size()
	if height < 2 || width < 1 {
		e.screen.Show()
		return
	}
	viewRows := height - 1

	e.scrollTo(viewRows)

	lines := e.host.Buffer().AllLines()
	selStart, selEnd := e.selectionRange()

	base := tcell.StyleDefault
	selected := base.Reverse(true)
	current := base.Bold(true)

	for row := 0; row < viewRows; row++ {
		n := e.top + row
		if n > len(lines) {
			break
		}

		style := base
		switch {
		case selStart > 0 && n >= selStart && n <= selEnd:
			style = selected
		case n == e.cursor:
			style = current
		}

		x := drawText(e.screen, 0, row, style, lines[n-1])
		if style != base {
			fillLine(e.screen, x, row, style)
		}
	}

	e.drawStatus(width, height-1, len(lines))
	e.screen.ShowCursor(0, e.cursor-e.top)
	e.screen.Show()
}

// scrollTo adjusts the viewport so the cursor is visible.
func (e *Editor) scrollTo(viewRows int) {
	if e.cursor < e.top {
		e.top = e.cursor
	}
	if e.cursor >= e.top+viewRows {
		e.top = e.cursor - viewRows + 1
	}
}

// selectionRange returns the active visual range, or zeros.
func (e *Editor) selectionRange() (int, int) {
	if !e.visual {
		return 0, 0
	}
	start, end := e.anchor, e.cursor
	if end < start {
		start, end = end, start
	}
	return start, end
}

// drawStatus renders the status line on the given row.
func (e *Editor) drawStatus(width, row, total int) {
	mode := "NORMAL"
	if e.visual {
		mode = "VISUAL"
	}

	left := fmt.Sprintf(" %s | %s", mode, e.status)
	right := fmt.Sprintf("%d/%d ", e.cursor, total)

	style := tcell.StyleDefault.Reverse(true)
	x := drawText(e.screen, 0, row, style, left)
	fillLine(e.screen, x, row, style)

	rx := width - len(right)
	if rx > x {
		drawText(e.screen, rx, row, style, right)
	}
}
