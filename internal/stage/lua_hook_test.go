package stage

import (
	"context"
	"reflect"
	"testing"
)

func hookEnvelope(code string, plan []Invocation) Envelope {
	prj := testProject()
	prj.Hooks.ArgsInline = code
	env := NewEnvelope("simulate", &prj)
	env.Plan = plan
	return env
}

func TestLuaHookDisabledPassthrough(t *testing.T) {
	plan := []Invocation{{Program: "vlib", Args: []string{"sim"}}}
	env := hookEnvelope("", plan)
	out, err := Run(context.Background(), "lua-hook", env, Deps{})
	if err != nil {
		t.Fatalf("lua-hook: %v", err)
	}
	if !reflect.DeepEqual(out.Plan, plan) {
		t.Fatalf("plan changed: %v", out.Plan)
	}
}

func TestLuaHookRewritesArgs(t *testing.T) {
	code := `
if program == "vlog" then
	table.insert(args, "-quiet")
end
return args
`
	plan := []Invocation{
		{Program: "vlib", Args: []string{"sim"}},
		{Program: "vlog", Args: []string{"-work", "sim", "a.v"}},
	}
	env := hookEnvelope(code, plan)
	out, err := Run(context.Background(), "lua-hook", env, Deps{})
	if err != nil {
		t.Fatalf("lua-hook: %v", err)
	}
	if !reflect.DeepEqual(out.Plan[0].Args, []string{"sim"}) {
		t.Fatalf("vlib args changed: %v", out.Plan[0].Args)
	}
	want := []string{"-work", "sim", "a.v", "-quiet"}
	if !reflect.DeepEqual(out.Plan[1].Args, want) {
		t.Fatalf("vlog args = %v, want %v", out.Plan[1].Args, want)
	}
}

func TestLuaHookNilReturnKeepsArgs(t *testing.T) {
	plan := []Invocation{{Program: "vsim", Args: []string{"top"}}}
	env := hookEnvelope("return nil", plan)
	out, err := Run(context.Background(), "lua-hook", env, Deps{})
	if err != nil {
		t.Fatalf("lua-hook: %v", err)
	}
	if !reflect.DeepEqual(out.Plan, plan) {
		t.Fatalf("plan changed: %v", out.Plan)
	}
}

func TestLuaHookBadReturnFails(t *testing.T) {
	env := hookEnvelope(`return "nope"`, []Invocation{{Program: "vsim"}})
	if _, err := Run(context.Background(), "lua-hook", env, Deps{}); err == nil {
		t.Fatalf("expected error for non-table return")
	}
}

func TestLuaHookSyntaxErrorFails(t *testing.T) {
	env := hookEnvelope(`return (`, []Invocation{{Program: "vsim"}})
	if _, err := Run(context.Background(), "lua-hook", env, Deps{}); err == nil {
		t.Fatalf("expected error for invalid script")
	}
}
