package fence

import (
	"strings"

	"github.com/dshills/textmorph/internal/config"
	"github.com/dshills/textmorph/internal/engine/block"
	"github.com/dshills/textmorph/internal/transform"
)

// Action names for the built-in fences.
const (
	ActionRule       = "block.rule"       // toggle a horizontal rule pair
	ActionCode       = "block.code"       // toggle a fenced code block
	ActionComment    = "block.comment"    // toggle an HTML comment
	ActionBlockquote = "block.blockquote" // toggle a <blockquote> wrapper
	ActionDiv        = "block.div"        // toggle a <div> wrapper

	// customPrefix dispatches configured fence pairs as
	// "block.fence.<name>".
	customPrefix = "block.fence."
)

// Handler toggles delimiter fences around a block. Custom pairs come
// from the configuration's fences table.
type Handler struct {
	custom map[string]config.FencePair
}

// NewHandler creates a fence handler with the given custom pairs.
func NewHandler(custom map[string]config.FencePair) *Handler {
	return &Handler{custom: custom}
}

// Namespace returns the block namespace.
func (h *Handler) Namespace() string {
	return "block"
}

// Actions returns the action names this handler claims.
func (h *Handler) Actions() []string {
	actions := []string{ActionRule, ActionCode, ActionComment, ActionBlockquote, ActionDiv}
	for name := range h.custom {
		actions = append(actions, customPrefix+name)
	}
	return actions
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(action string) bool {
	switch action {
	case ActionRule, ActionCode, ActionComment, ActionBlockquote, ActionDiv:
		return true
	}
	if name, ok := strings.CutPrefix(action, customPrefix); ok {
		_, found := h.custom[name]
		return found
	}
	return false
}

// Handle processes a fence action.
func (h *Handler) Handle(action string, blk block.Block, ctx *transform.Context) transform.Result {
	f, ok := h.fenceFor(action, ctx.Config)
	if !ok {
		return transform.Errorf("unknown fence action: %s", action)
	}
	return transform.Success(f.Toggle(blk.Lines))
}

// fenceFor resolves an action name to its fence.
func (h *Handler) fenceFor(action string, cfg config.Config) (Fence, bool) {
	switch action {
	case ActionRule:
		return Rule(), true
	case ActionCode:
		return Code(cfg.CodeFenceLang), true
	case ActionComment:
		return Comment(), true
	case ActionBlockquote:
		return HTMLBlock("blockquote"), true
	case ActionDiv:
		return HTMLBlock("div"), true
	}

	if name, ok := strings.CutPrefix(action, customPrefix); ok {
		pair, found := h.custom[name]
		if !found {
			return Fence{}, false
		}
		return Fence{
			Start:           pair.Start,
			End:             pair.End,
			BlankAfterStart: pair.PadBlank,
			BlankBeforeEnd:  pair.PadBlank,
		}, true
	}

	return Fence{}, false
}
