package stage

import (
	"context"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const hookTimeoutMs = 1000

// newHookLuaState creates a restricted interpreter for argument hooks: only
// the base, string, table and math libraries are opened, so scripts cannot
// touch the filesystem, environment or network.
func newHookLuaState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:     true,
		RegistrySize:     256,
		RegistryMaxSize:  4096,
		RegistryGrowStep: 0,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}

// runHookScript evaluates code with `program` and `args` globals set for one
// planned invocation. A nil return keeps the original arguments; a table of
// strings replaces them.
func runHookScript(code string, program string, args []string) ([]string, bool, error) {
	L := newHookLuaState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), hookTimeoutMs*time.Millisecond)
	defer cancel()
	L.SetContext(ctx)

	L.SetGlobal("program", lua.LString(program))
	argsTbl := L.NewTable()
	for i, a := range args {
		argsTbl.RawSetInt(i+1, lua.LString(a))
	}
	L.SetGlobal("args", argsTbl)

	fn, err := L.LoadString(code)
	if err != nil {
		return nil, false, err
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return nil, false, err
	}
	ret := L.Get(-1)
	L.Pop(1)

	if ret == lua.LNil {
		return nil, false, nil
	}
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, false, errHookReturn
	}
	out, err := stringsFromLTable(tbl)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// stringsFromLTable converts a sequence table to a string slice.
func stringsFromLTable(tbl *lua.LTable) ([]string, error) {
	n := tbl.Len()
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		v := tbl.RawGetInt(i)
		s, ok := v.(lua.LString)
		if !ok {
			return nil, errHookReturn
		}
		out = append(out, string(s))
	}
	return out, nil
}

func isLuaTimeout(err error) bool {
	if err == nil {
		return false
	}
	if err == context.DeadlineExceeded {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}
