package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// callString calls a Lua function with one string argument and expects
// a string result.
func callString(L *lua.LState, fn *lua.LFunction, arg string) (string, error) {
	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(arg)); err != nil {
		return "", err
	}

	ret := L.Get(-1)
	L.Pop(1)

	s, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("lua function returned %s, expected string", ret.Type())
	}
	return string(s), nil
}

// callBool calls a Lua function with one string argument and expects a
// truthy result.
func callBool(L *lua.LState, fn *lua.LFunction, arg string) (bool, error) {
	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(arg)); err != nil {
		return false, err
	}

	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret), nil
}
