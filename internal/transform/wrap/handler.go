package wrap

import (
	"github.com/dshills/textmorph/internal/engine/block"
	"github.com/dshills/textmorph/internal/transform"
)

// Action names for wrap operations.
const (
	ActionWrap   = "block.wrap"   // rewrap each paragraph at the wrap column
	ActionUnwrap = "block.unwrap" // join each paragraph to a single line
)

// Handler wraps and unwraps paragraphs within a block.
type Handler struct{}

// NewHandler creates a wrap handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the block namespace.
func (h *Handler) Namespace() string {
	return "block"
}

// Actions returns the action names this handler claims.
func (h *Handler) Actions() []string {
	return []string{ActionWrap, ActionUnwrap}
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(action string) bool {
	return action == ActionWrap || action == ActionUnwrap
}

// Handle processes a wrap action. Both operations map over paragraphs,
// leaving blank separator lines untouched.
func (h *Handler) Handle(action string, blk block.Block, ctx *transform.Context) transform.Result {
	cfg := ctx.Config

	switch action {
	case ActionWrap:
		opts := Options{
			Width:           cfg.WrapColumn,
			RetainIndent:    cfg.RetainIndent,
			NormalizeIndent: cfg.NormalizeIndent,
			TabWidth:        cfg.TabWidth,
		}
		out := block.MapParagraphs(blk.Lines, func(p []string) []string {
			return Paragraph(p, opts)
		})
		return transform.Success(out)

	case ActionUnwrap:
		out := block.MapParagraphs(blk.Lines, func(p []string) []string {
			return []string{Unwrap(p)}
		})
		return transform.Success(out)

	default:
		return transform.Errorf("unknown wrap action: %s", action)
	}
}
