// Package toggle implements the generic prefix/suffix toggle: inspect
// the first line of a block to decide between stripping a marker from
// every line that carries it and adding the marker to every line. The
// quote, bullet-list and line-continuation toggles are built on this
// model.
package toggle

import "github.com/dshills/textmorph/internal/engine/block"

// Mode is the two-way decision a toggle's detection predicate produces.
type Mode uint8

const (
	// ModeAdd applies the marker to every line.
	ModeAdd Mode = iota
	// ModeRemove strips the marker from every line that carries it.
	ModeRemove
)

// Toggle pairs a detection predicate with its add and remove mutations.
// New toggle kinds are added by supplying a (Detect, Add, Remove)
// triple, not by branching logic.
type Toggle struct {
	// Detect reports whether a line carries the marker.
	Detect func(line string) bool

	// Add applies the marker to a line.
	Add func(line string) string

	// Remove strips the marker from a line known to carry it.
	Remove func(line string) string

	// SkipBlank leaves blank lines untouched when adding.
	SkipBlank bool
}

// DecideMode inspects the first line and returns the direction the
// whole block will take.
func (t Toggle) DecideMode(lines []string) Mode {
	if len(lines) > 0 && t.Detect(lines[0]) {
		return ModeRemove
	}
	return ModeAdd
}

// Apply toggles the marker across all lines, with the direction decided
// by the first line.
func (t Toggle) Apply(lines []string) []string {
	out := make([]string, len(lines))

	switch t.DecideMode(lines) {
	case ModeRemove:
		for i, line := range lines {
			if t.Detect(line) {
				out[i] = t.Remove(line)
			} else {
				out[i] = line
			}
		}
	case ModeAdd:
		for i, line := range lines {
			if t.SkipBlank && block.IsBlank(line) {
				out[i] = line
			} else {
				out[i] = t.Add(line)
			}
		}
	}

	return out
}
