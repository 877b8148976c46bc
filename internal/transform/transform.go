package transform

import (
	"sort"
	"sync"

	"github.com/dshills/textmorph/internal/config"
	"github.com/dshills/textmorph/internal/engine/block"
)

// Clipboard publishes text outside the document. The table conversion
// uses it to additionally expose its result; a failing clipboard never
// fails the transformation.
type Clipboard interface {
	Copy(text string) error
}

// Context carries the invocation-scoped state handlers need: the active
// configuration and the host clipboard. It holds no document state; the
// block is passed explicitly.
type Context struct {
	Config    config.Config
	Clipboard Clipboard
}

// NewContext creates a context with the given configuration and an
// optional clipboard.
func NewContext(cfg config.Config, clip Clipboard) *Context {
	return &Context{Config: cfg, Clipboard: clip}
}

// Handler processes one or more named block transformations.
type Handler interface {
	// Namespace returns the handler's action namespace.
	Namespace() string

	// CanHandle returns true if this handler can process the action.
	CanHandle(action string) bool

	// Handle applies the named action to the block.
	Handle(action string, blk block.Block, ctx *Context) Result

	// Actions returns the action names this handler claims.
	Actions() []string
}

// Registry routes action names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a handler. Later registrations do not override earlier
// ones for actions both claim.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, h)
}

// Dispatch routes an action to the first handler that claims it. An
// empty block yields a no-op without consulting any handler.
func (r *Registry) Dispatch(action string, blk block.Block, ctx *Context) Result {
	if blk.IsEmpty() {
		return NoOp()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.handlers {
		if h.CanHandle(action) {
			return h.Handle(action, blk, ctx)
		}
	}
	return Errorf("no handler for action: %s", action)
}

// Actions returns the sorted names of every registered action.
func (r *Registry) Actions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for _, h := range r.handlers {
		names = append(names, h.Actions()...)
	}
	sort.Strings(names)
	return names
}
