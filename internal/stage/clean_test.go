package stage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCleanRemovesSimDir(t *testing.T) {
	dir := t.TempDir()
	prj := testProject()
	prj.SimDir = filepath.Join(dir, "sim")
	if err := os.MkdirAll(filepath.Join(prj.SimDir, "work"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(prj.SimDir, "simulation.log"), []byte("log"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var buf bytes.Buffer
	env := NewEnvelope("clean", &prj)
	if _, err := Run(context.Background(), "clean", env, Deps{Out: &buf}); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if _, err := os.Stat(prj.SimDir); !os.IsNotExist(err) {
		t.Fatalf("sim dir still exists: %v", err)
	}
	if buf.String() != "Cleaned simulation directory.\n" {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestCleanMissingDirSucceeds(t *testing.T) {
	prj := testProject()
	prj.SimDir = filepath.Join(t.TempDir(), "never-created")

	var buf bytes.Buffer
	env := NewEnvelope("clean", &prj)
	if _, err := Run(context.Background(), "clean", env, Deps{Out: &buf}); err != nil {
		t.Fatalf("clean on missing dir: %v", err)
	}
	if buf.String() != "Cleaned simulation directory.\n" {
		t.Fatalf("output = %q", buf.String())
	}
}
