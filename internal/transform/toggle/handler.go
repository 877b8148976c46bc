package toggle

import (
	"github.com/dshills/textmorph/internal/engine/block"
	"github.com/dshills/textmorph/internal/transform"
)

// Action names for prefix/suffix toggles.
const (
	ActionQuote  = "block.quote"  // toggle "> " blockquote markers
	ActionBullet = "block.bullet" // toggle "- " list markers
	ActionBreak  = "block.break"  // toggle trailing "\" continuation markers
)

// Handler dispatches the built-in prefix/suffix toggles.
type Handler struct{}

// NewHandler creates a toggle handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the block namespace.
func (h *Handler) Namespace() string {
	return "block"
}

// Actions returns the action names this handler claims.
func (h *Handler) Actions() []string {
	return []string{ActionQuote, ActionBullet, ActionBreak}
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(action string) bool {
	switch action {
	case ActionQuote, ActionBullet, ActionBreak:
		return true
	}
	return false
}

// Handle processes a toggle action.
func (h *Handler) Handle(action string, blk block.Block, ctx *transform.Context) transform.Result {
	switch action {
	case ActionQuote:
		return transform.Success(Quote(ctx.Config.QuoteBlankLines).Apply(blk.Lines))
	case ActionBullet:
		return transform.Success(Bullet(ctx.Config.BulletSkipBlank).Apply(blk.Lines))
	case ActionBreak:
		return transform.Success(Breaks(blk.Lines, blk.EndOfParagraph))
	default:
		return transform.Errorf("unknown toggle action: %s", action)
	}
}
