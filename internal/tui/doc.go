// Package tui provides the interactive terminal front end. It renders
// the document with tcell, tracks a cursor and an optional line-wise
// visual selection, and maps single keys to block transformations.
package tui
