package stage

import (
	"path/filepath"
	"testing"

	"github.com/flarebyte/wavesmith/internal/config"
)

func TestValidateConfigResolvesPaths(t *testing.T) {
	prj := testProject()
	env, err := validatedEnvelope("simulate", &prj)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if env.Meta.LibDir != "sim" {
		t.Fatalf("lib dir = %q", env.Meta.LibDir)
	}
	if env.Meta.LogPath != filepath.Join("sim", "simulation.log") {
		t.Fatalf("log path = %q", env.Meta.LogPath)
	}
	if env.Meta.WavePath != filepath.Join("sim", "waveform.wlf") {
		t.Fatalf("wave path = %q", env.Meta.WavePath)
	}
	if len(env.Sources) != 2 {
		t.Fatalf("sources = %v", env.Sources)
	}
}

func TestValidateConfigRequiresTopForSimulation(t *testing.T) {
	for _, action := range []string{"simulate", "simulate_gui"} {
		prj := testProject()
		prj.Top = ""
		if _, err := validatedEnvelope(action, &prj); err == nil {
			t.Fatalf("%s: expected error for empty top", action)
		}
	}
}

func TestValidateConfigCleanWithoutTop(t *testing.T) {
	prj := config.Default()
	if _, err := validatedEnvelope("clean", &prj); err != nil {
		t.Fatalf("clean should not require top: %v", err)
	}
	if _, err := validatedEnvelope("view_wave", &prj); err != nil {
		t.Fatalf("view_wave should not require top: %v", err)
	}
}

func TestValidateConfigRejectsUnknownAction(t *testing.T) {
	prj := testProject()
	if _, err := validatedEnvelope("bogus", &prj); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}

func TestValidateConfigNoFilesNoDiscovery(t *testing.T) {
	prj := testProject()
	prj.Files = nil
	prj.Discovery.Enabled = false
	if _, err := validatedEnvelope("simulate", &prj); err == nil {
		t.Fatalf("expected error without files or discovery")
	}
}
