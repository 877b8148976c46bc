// Package host models the contract between the transformation engine
// and its embedding editor: resolving the current selection or the
// paragraph under the cursor to a Block, writing the rewritten block
// back, and publishing text to the clipboard.
//
// The package also provides BufferHost, an in-memory implementation
// over an engine buffer. It backs the command-line front end, the
// interactive terminal front end, and the tests.
package host

import "github.com/dshills/textmorph/internal/engine/block"

// Host is the external contract the engine consumes. A Host failure
// aborts the operation before any transformation runs.
type Host interface {
	// Block resolves the current selection or paragraph to a Block.
	Block() (block.Block, error)

	// SetBlock replaces the block's document range with its lines.
	SetBlock(blk block.Block) error

	// CopyToClipboard publishes text outside the document. Only the
	// table conversions use it; the computation does not depend on it
	// succeeding.
	CopyToClipboard(text string) error
}
