// Package lua provides Lua scripting for user-defined toggles. A script
// calls textmorph.register_toggle with a detection predicate and an
// add/remove mutation pair; the registered toggle is then dispatched
// like any built-in transformation, under "plugin.<name>".
package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// NewState creates a sandboxed Lua state. Only the base, table, string
// and math libraries are opened; scripts have no file system, process
// or network access.
//
// gopher-lua's LState is not goroutine-safe; callers must serialize
// access.
func NewState() (*lua.LState, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	libs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}

	for _, lib := range libs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("opening lua library %s: %w", lib.name, err)
		}
	}

	return L, nil
}
