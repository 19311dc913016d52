package stage

import (
	"context"
	"errors"
	"fmt"
)

var errHookReturn = errors.New("hook must return nil or a table of strings")

// luaHookRunner applies the optional user hook to every planned invocation.
// The hook sees the program name and argument list and may return a
// replacement argument list; anything else is a configuration error.
func luaHookRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	if in.Meta == nil || in.Meta.Project == nil {
		return in, nil
	}
	code := in.Meta.Project.Hooks.ArgsInline
	if code == "" {
		return in, nil
	}

	out := in
	out.Plan = make([]Invocation, len(in.Plan))
	for i, inv := range in.Plan {
		args, replaced, err := runHookScript(code, inv.Program, inv.Args)
		if err != nil {
			if isLuaTimeout(err) {
				return Envelope{}, fmt.Errorf("lua-hook: %s: sandbox timeout", inv.Program)
			}
			return Envelope{}, fmt.Errorf("lua-hook: %s: %v", inv.Program, err)
		}
		if replaced {
			inv.Args = args
		}
		out.Plan[i] = inv
	}
	return out, nil
}

func init() { Register("lua-hook", luaHookRunner) }
