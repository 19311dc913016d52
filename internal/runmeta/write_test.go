package runmeta

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMarshalCanonicalOrder(t *testing.T) {
	b, err := Marshal(map[string]any{
		"waveform": "sim/waveform.wlf",
		"action":   "simulate",
		"top":      "d1_test",
		"sources":  []string{"src/a.v", "src/b.v"},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "action: simulate\n" +
		"sources:\n" +
		"  - src/a.v\n" +
		"  - src/b.v\n" +
		"top: d1_test\n" +
		"waveform: sim/waveform.wlf\n"
	if string(b) != want {
		t.Fatalf("yaml = %q, want %q", string(b), want)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	in := map[string]any{"b": "2", "a": "1", "c": map[string]any{"z": "9", "y": "8"}}
	first, err := Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Marshal(in)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("non-deterministic output: %q vs %q", again, first)
		}
	}
}

func TestWriteCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim", "run.meta.yaml")
	if err := Write(path, map[string]any{"action": "simulate"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "action: simulate\n" {
		t.Fatalf("content = %q", string(b))
	}
}
