package transform

import "fmt"

// Status indicates the outcome of a transformation.
type Status uint8

const (
	// StatusOK indicates successful execution.
	StatusOK Status = iota
	// StatusNoOp indicates the transformation had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of a transformation.
type Result struct {
	// Status indicates the result status.
	Status Status

	// Err contains any error that occurred.
	Err error

	// Message is an optional status message for display.
	Message string

	// Lines is the rewritten block content. Nil for no-op and error
	// results.
	Lines []string

	// Clipboard is text the host should additionally publish to the
	// system clipboard, when non-empty.
	Clipboard string
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Success creates a successful result carrying the rewritten lines.
func Success(lines []string) Result {
	return Result{Status: StatusOK, Lines: lines}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// NoOpWithMessage creates a no-operation result with a message.
func NoOpWithMessage(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Err: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Err: fmt.Errorf(format, args...)}
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithClipboard returns a copy of the result with clipboard text.
func (r Result) WithClipboard(text string) Result {
	r.Clipboard = text
	return r
}
