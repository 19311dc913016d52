package root

import (
	"bytes"
	"strings"
	"testing"
)

func TestNoArgsIsUsageError(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected usage error without a command")
	}
	if !strings.Contains(out.String(), "simulate") {
		t.Fatalf("usage text missing commands: %q", out.String())
	}
}

func TestHelpSucceeds(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"help"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, name := range []string{"simulate", "simulate_gui", "view_wave", "clean"} {
		if !strings.Contains(out.String(), name) {
			t.Fatalf("help missing %q: %q", name, out.String())
		}
	}
}

func TestUnknownCommandIsError(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"explode"})
	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("error = %v", err)
	}
}
