package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textmorph/internal/app"
	"github.com/dshills/textmorph/internal/engine/buffer"
	"github.com/dshills/textmorph/internal/host"
)

func newTestEditor(t *testing.T, text string) (*Editor, *buffer.Buffer, tcell.SimulationScreen) {
	t.Helper()

	a, err := app.New(app.Options{LogOutput: &strings.Builder{}})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	t.Cleanup(a.Close)

	buf := buffer.FromString(text)
	h := host.NewBufferHost(buf)
	screen := tcell.NewSimulationScreen("UTF-8")
	return NewWithScreen(a, h, screen), buf, screen
}

// runSession runs the editor, injects the keys, quits, and waits for
// the event loop to exit.
func runSession(t *testing.T, ed *Editor, screen tcell.SimulationScreen, keys ...rune) {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- ed.Run() }()

	// Give Run a moment to initialize the screen.
	time.Sleep(50 * time.Millisecond)

	for _, r := range keys {
		screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("editor did not exit")
	}
}

func TestQuoteParagraph(t *testing.T) {
	ed, buf, screen := newTestEditor(t, "alpha\nbeta\n")

	runSession(t, ed, screen, 'q')

	lines := buf.AllLines()
	if lines[0] != "> alpha" || lines[1] != "> beta" {
		t.Errorf("expected quoted paragraph, got %q", lines)
	}
}

func TestVisualBullet(t *testing.T) {
	ed, buf, screen := newTestEditor(t, "one\ntwo\nthree\n")

	// Select lines 1-2 and bullet them; line 3 stays untouched.
	runSession(t, ed, screen, 'V', 'j', 'b')

	lines := buf.AllLines()
	if lines[0] != "- one" || lines[1] != "- two" {
		t.Errorf("expected bulleted selection, got %q", lines)
	}
	if lines[2] != "three" {
		t.Errorf("expected line outside selection untouched, got %q", lines[2])
	}
}

func TestMovementClamped(t *testing.T) {
	ed, _, screen := newTestEditor(t, "only\n")

	runSession(t, ed, screen, 'k', 'j', 'j', 'G', 'g')

	if ed.cursor != 1 {
		t.Errorf("expected cursor clamped to 1, got %d", ed.cursor)
	}
}

func TestStatusAfterUnknownParagraph(t *testing.T) {
	ed, buf, screen := newTestEditor(t, "line one\n\nline three\n")

	// Move onto the blank line and try to quote; nothing changes.
	runSession(t, ed, screen, 'j', 'q')

	if got := buf.AllLines()[0]; got != "line one" {
		t.Errorf("expected document unchanged, got %q", got)
	}
	if !strings.Contains(ed.status, "block.quote") {
		t.Errorf("expected status to report the failed action, got %q", ed.status)
	}
}
