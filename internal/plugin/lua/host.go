package lua

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"
)

// ErrHostClosed is returned when operating on a closed host.
var ErrHostClosed = errors.New("lua host is closed")

// ToggleSpec is a toggle registered from a Lua script.
type ToggleSpec struct {
	// ID uniquely identifies this registration; it appears in error
	// messages so a failing script can be traced.
	ID string

	// Name is the action suffix: the toggle dispatches as
	// "plugin.<name>".
	Name string

	// SkipBlank leaves blank lines untouched when adding.
	SkipBlank bool

	detect *lua.LFunction
	add    *lua.LFunction
	remove *lua.LFunction
}

// Host owns a Lua state and the toggles scripts have registered in it.
// All Lua execution is serialized through the host's mutex.
type Host struct {
	mu      sync.Mutex
	L       *lua.LState
	toggles map[string]*ToggleSpec
	closed  bool
}

// NewHost creates a host with a fresh sandboxed state and the
// textmorph script API installed.
func NewHost() (*Host, error) {
	L, err := NewState()
	if err != nil {
		return nil, err
	}

	h := &Host{
		L:       L,
		toggles: make(map[string]*ToggleSpec),
	}

	mod := L.NewTable()
	L.SetField(mod, "register_toggle", L.NewFunction(h.luaRegisterToggle))
	L.SetGlobal("textmorph", mod)

	return h, nil
}

// Close releases the Lua state.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.L.Close()
}

// LoadString runs a script from source.
func (h *Host) LoadString(src string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}
	return h.L.DoString(src)
}

// LoadFile runs a script from a file.
func (h *Host) LoadFile(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}
	if err := h.L.DoFile(path); err != nil {
		return fmt.Errorf("loading plugin %s: %w", path, err)
	}
	return nil
}

// LoadDir runs every *.lua script in a directory, in name order. A
// missing directory is not an error.
func (h *Host) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".lua") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	for _, p := range paths {
		if err := h.LoadFile(p); err != nil {
			return err
		}
	}
	return nil
}

// Toggles returns the registered toggle names, sorted.
func (h *Host) Toggles() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	names := make([]string, 0, len(h.toggles))
	for name := range h.toggles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// luaRegisterToggle implements textmorph.register_toggle(tbl). The
// table must carry a name and detect/add/remove functions; skip_blank
// is optional.
func (h *Host) luaRegisterToggle(L *lua.LState) int {
	tbl := L.CheckTable(1)

	name, ok := tbl.RawGetString("name").(lua.LString)
	if !ok || name == "" {
		L.ArgError(1, "register_toggle requires a name")
		return 0
	}

	spec := &ToggleSpec{
		ID:   uuid.NewString(),
		Name: string(name),
	}

	if fn, ok := tbl.RawGetString("detect").(*lua.LFunction); ok {
		spec.detect = fn
	}
	if fn, ok := tbl.RawGetString("add").(*lua.LFunction); ok {
		spec.add = fn
	}
	if fn, ok := tbl.RawGetString("remove").(*lua.LFunction); ok {
		spec.remove = fn
	}
	if spec.detect == nil || spec.add == nil || spec.remove == nil {
		L.ArgError(1, "register_toggle requires detect, add and remove functions")
		return 0
	}

	spec.SkipBlank = lua.LVAsBool(tbl.RawGetString("skip_blank"))

	h.toggles[spec.Name] = spec
	return 0
}

// detect runs a spec's detection predicate. Callers must hold h.mu.
func (h *Host) detectLocked(spec *ToggleSpec, line string) (bool, error) {
	return callBool(h.L, spec.detect, line)
}

// mutate runs a spec's add or remove mutation. Callers must hold h.mu.
func (h *Host) mutateLocked(fn *lua.LFunction, line string) (string, error) {
	return callString(h.L, fn, line)
}
