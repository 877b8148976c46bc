package list

import (
	"github.com/dshills/textmorph/internal/engine/block"
	"github.com/dshills/textmorph/internal/transform"
)

// Action names for list numbering operations.
const (
	ActionNumber   = "block.number"   // toggle flat numbering of non-indented lines
	ActionRenumber = "block.renumber" // renumber nested lists per indent level
)

// Handler numbers, un-numbers and renumbers ordered lists.
type Handler struct{}

// NewHandler creates a list handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the block namespace.
func (h *Handler) Namespace() string {
	return "block"
}

// Actions returns the action names this handler claims.
func (h *Handler) Actions() []string {
	return []string{ActionNumber, ActionRenumber}
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(action string) bool {
	return action == ActionNumber || action == ActionRenumber
}

// Handle processes a list action.
func (h *Handler) Handle(action string, blk block.Block, ctx *transform.Context) transform.Result {
	switch action {
	case ActionNumber:
		return transform.Success(Number(blk.Lines))
	case ActionRenumber:
		return transform.Success(Renumber(blk.Lines, ctx.Config.WidthMode(), ctx.Config.TabWidth))
	default:
		return transform.Errorf("unknown list action: %s", action)
	}
}
