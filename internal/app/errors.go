package app

import "fmt"

// InitError reports a component that failed to initialize.
type InitError struct {
	// Component names the failed component.
	Component string
	// Err is the underlying error.
	Err error
}

// Error returns the error message.
func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

// Unwrap returns the underlying error.
func (e *InitError) Unwrap() error {
	return e.Err
}
