package lua

import (
	"fmt"
	"strings"

	"github.com/dshills/textmorph/internal/engine/block"
	"github.com/dshills/textmorph/internal/transform"
)

// actionPrefix namespaces script-registered toggles.
const actionPrefix = "plugin."

// Handler exposes registered Lua toggles as transform actions. A
// toggle named "stars" dispatches as "plugin.stars".
type Handler struct {
	host *Host
}

// NewHandler creates a handler backed by a script host.
func NewHandler(host *Host) *Handler {
	return &Handler{host: host}
}

// Namespace returns the handler's action namespace.
func (h *Handler) Namespace() string { return "plugin" }

// CanHandle reports whether action names a registered toggle.
func (h *Handler) CanHandle(action string) bool {
	name, ok := strings.CutPrefix(action, actionPrefix)
	if !ok {
		return false
	}
	h.host.mu.Lock()
	defer h.host.mu.Unlock()
	_, ok = h.host.toggles[name]
	return ok
}

// Actions lists the available plugin actions.
func (h *Handler) Actions() []string {
	names := h.host.Toggles()
	actions := make([]string, len(names))
	for i, name := range names {
		actions[i] = actionPrefix + name
	}
	return actions
}

// Handle applies the named toggle to the block. The toggle's detect
// function runs against the first line to pick the direction: remove
// strips the marker from every line where detect matches, add marks
// every line (blank lines excepted when skip_blank is set).
func (h *Handler) Handle(action string, blk block.Block, ctx *transform.Context) transform.Result {
	name, ok := strings.CutPrefix(action, actionPrefix)
	if !ok {
		return transform.Errorf("no handler for action: %s", action)
	}

	h.host.mu.Lock()
	defer h.host.mu.Unlock()

	if h.host.closed {
		return transform.Error(ErrHostClosed)
	}
	spec, ok := h.host.toggles[name]
	if !ok {
		return transform.Errorf("no handler for action: %s", action)
	}

	if len(blk.Lines) == 0 {
		return transform.NoOp()
	}

	removing, err := h.host.detectLocked(spec, blk.Lines[0])
	if err != nil {
		return transform.Error(fmt.Errorf("plugin toggle %s (%s): %w", spec.Name, spec.ID, err))
	}

	out := make([]string, len(blk.Lines))
	for i, line := range blk.Lines {
		fn := spec.add
		if removing {
			// Remove only where the marker is present, so unmarked
			// lines survive a mixed block untouched.
			marked, err := h.host.detectLocked(spec, line)
			if err != nil {
				return transform.Error(fmt.Errorf("plugin toggle %s (%s): %w", spec.Name, spec.ID, err))
			}
			if !marked {
				out[i] = line
				continue
			}
			fn = spec.remove
		} else if spec.SkipBlank && block.IsBlank(line) {
			out[i] = line
			continue
		}
		next, err := h.host.mutateLocked(fn, line)
		if err != nil {
			return transform.Error(fmt.Errorf("plugin toggle %s (%s): %w", spec.Name, spec.ID, err))
		}
		out[i] = next
	}

	return transform.Success(out)
}
