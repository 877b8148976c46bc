package host

import "errors"

// Errors returned by host-boundary resolution. These are the only
// failures in the system: once a Block is resolved, every
// transformation is total over it.
var (
	// ErrInvalidSelection indicates there is no active selection, or
	// the selection marks are inconsistent (end before start).
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrNoParagraph indicates the cursor is on a blank line when
	// paragraph detection was requested.
	ErrNoParagraph = errors.New("no paragraph under cursor")
)
