// Package transform defines the handler and dispatch model for block
// transformations. A Handler owns a set of named actions (for example
// "block.wrap" or "block.quote"), reports which actions it can process
// through CanHandle, and produces a Result describing the rewritten
// block. The Registry routes an action name to the first handler that
// claims it.
//
// Handlers decide add-versus-remove by inspecting the first line of the
// block, so every action is a toggle: dispatching the same action twice
// returns the block to its original form for inputs that round-trip
// cleanly.
package transform
