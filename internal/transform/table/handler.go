package table

import (
	"strings"

	"github.com/dshills/textmorph/internal/engine/block"
	"github.com/dshills/textmorph/internal/transform"
)

// ActionTable converts between CSV and a Markdown table, with the
// direction decided by the first line of the block.
const ActionTable = "block.table"

// Handler converts blocks between CSV and Markdown tables. The result
// is also published to the host clipboard when one is available; a
// clipboard failure never fails the conversion.
type Handler struct{}

// NewHandler creates a table handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the block namespace.
func (h *Handler) Namespace() string {
	return "block"
}

// Actions returns the action names this handler claims.
func (h *Handler) Actions() []string {
	return []string{ActionTable}
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(action string) bool {
	return action == ActionTable
}

// Handle converts the block and publishes the result to the clipboard.
func (h *Handler) Handle(action string, blk block.Block, ctx *transform.Context) transform.Result {
	if action != ActionTable {
		return transform.Errorf("unknown table action: %s", action)
	}
	if len(blk.Lines) == 0 {
		return transform.NoOp()
	}

	var out []string
	if IsMarkdownTable(blk.Lines[0]) {
		out = ToCSV(blk.Lines)
	} else {
		out = ToMarkdown(blk.Lines)
	}

	text := strings.Join(out, "\n")
	if ctx.Clipboard != nil {
		_ = ctx.Clipboard.Copy(text) // best-effort
	}

	return transform.Success(out).WithClipboard(text)
}
