package config

import (
	"errors"
	"os"
)

// DefaultPath is the project file looked up when no --config flag is given.
const DefaultPath = "wavesmith.cue"

// Tools holds the external program names for the simulation toolchain.
type Tools struct {
	Vlib string
	Vlog string
	Vsim string
}

// Discovery controls automatic source discovery under SrcDir.
type Discovery struct {
	Enabled     bool
	NoGitignore bool
}

// Hooks holds optional user scripting attached to the flow.
type Hooks struct {
	// ArgsInline is a Lua chunk that may rewrite a planned command's
	// argument list before execution.
	ArgsInline string
}

// Project is the immutable configuration for one simulation project. It is
// constructed once at startup and passed to the pipeline; action routines
// never consult ambient globals.
type Project struct {
	ConfigVersion string
	// Top is the top-level module the simulator instantiates.
	Top string
	// SrcDir is scanned for HDL sources when Files is empty.
	SrcDir string
	// SimDir receives the simulation library, log and waveform files.
	SimDir string
	// ArtifactDir is the build-artifact directory, created alongside SimDir.
	ArtifactDir string
	// Files is the ordered compile list. Order is preserved verbatim.
	Files []string
	// VsimOptions are passed to vsim before any mode flags.
	VsimOptions []string
	Tools       Tools
	Discovery   Discovery
	Hooks       Hooks
}

// Default returns the built-in project configuration used when no config
// file is present. Top is intentionally empty: simulate requires it, while
// clean and view_wave work without one.
func Default() Project {
	return Project{
		ConfigVersion: "1",
		SrcDir:        "src",
		SimDir:        "sim",
		ArtifactDir:   "quartus",
		VsimOptions:   []string{"-vopt", "-voptargs=+acc"},
		Tools:         Tools{Vlib: "vlib", Vlog: "vlog", Vsim: "vsim"},
		Discovery:     Discovery{Enabled: true},
	}
}

// Resolve loads the project config from path, or from DefaultPath when path
// is empty and the file exists, or falls back to Default().
func Resolve(path string) (Project, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return Project{}, err
	}
	return Default(), nil
}
