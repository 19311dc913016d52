package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Load parses and validates a CUE project file. Values present in the file
// override the built-in defaults; absent optional fields keep them.
func Load(path string) (Project, error) {
	if filepath.Ext(path) != ".cue" {
		return Project{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("failed to read config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Project, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return Project{}, fmt.Errorf("invalid config: %v", err)
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Project{}, err
	}

	p := Default()
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&p.ConfigVersion); err != nil {
		return Project{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if err := decodeStringField(v, "top", &p.Top); err != nil {
		return Project{}, err
	}
	if err := decodeStringField(v, "srcDir", &p.SrcDir); err != nil {
		return Project{}, err
	}
	if err := decodeStringField(v, "simDir", &p.SimDir); err != nil {
		return Project{}, err
	}
	if err := decodeStringField(v, "artifactDir", &p.ArtifactDir); err != nil {
		return Project{}, err
	}
	if err := decodeStringListField(v, "files", &p.Files); err != nil {
		return Project{}, err
	}
	if err := decodeStringListField(v, "vsimOptions", &p.VsimOptions); err != nil {
		return Project{}, err
	}

	// Optional tools.*
	tv := v.LookupPath(cue.ParsePath("tools"))
	if tv.Exists() {
		if err := decodeStringField(tv, "vlib", &p.Tools.Vlib); err != nil {
			return Project{}, err
		}
		if err := decodeStringField(tv, "vlog", &p.Tools.Vlog); err != nil {
			return Project{}, err
		}
		if err := decodeStringField(tv, "vsim", &p.Tools.Vsim); err != nil {
			return Project{}, err
		}
	}
	// Optional discovery.*
	dv := v.LookupPath(cue.ParsePath("discovery"))
	if dv.Exists() {
		if err := decodeBoolField(dv, "enabled", &p.Discovery.Enabled); err != nil {
			return Project{}, err
		}
		if err := decodeBoolField(dv, "noGitignore", &p.Discovery.NoGitignore); err != nil {
			return Project{}, err
		}
	}
	// Optional hooks.argsInline
	hv := v.LookupPath(cue.ParsePath("hooks"))
	if hv.Exists() {
		if err := decodeStringField(hv, "argsInline", &p.Hooks.ArgsInline); err != nil {
			return Project{}, err
		}
	}
	return p, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

func decodeStringField(v cue.Value, name string, dst *string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return nil
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	if err := f.Decode(dst); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return nil
}

func decodeStringListField(v cue.Value, name string, dst *[]string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return nil
	}
	if f.Kind() != cue.ListKind {
		return fmt.Errorf("invalid type for field: %s (expected list of string)", name)
	}
	var out []string
	if err := f.Decode(&out); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	*dst = out
	return nil
}

func decodeBoolField(v cue.Value, name string, dst *bool) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return nil
	}
	if f.Kind() != cue.BoolKind {
		return fmt.Errorf("invalid type for field: %s (expected bool)", name)
	}
	if err := f.Decode(dst); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return nil
}
