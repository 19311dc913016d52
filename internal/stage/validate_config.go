package stage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

const (
	logFileName  = "simulation.log"
	waveFileName = "waveform.wlf"
)

func validateConfigRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	if in.Meta == nil || in.Meta.Project == nil {
		return Envelope{}, errors.New("validate-config: missing project configuration")
	}
	p := in.Meta.Project
	if p.SimDir == "" {
		return Envelope{}, errors.New("validate-config: simDir must not be empty")
	}
	if p.ArtifactDir == "" {
		return Envelope{}, errors.New("validate-config: artifactDir must not be empty")
	}

	switch in.Meta.Action {
	case "simulate", "simulate_gui":
		if p.Top == "" {
			return Envelope{}, errors.New("validate-config: top module is required for simulation")
		}
		if len(p.Files) == 0 && !p.Discovery.Enabled {
			return Envelope{}, errors.New("validate-config: no source files configured and discovery is disabled")
		}
		if p.Tools.Vlib == "" || p.Tools.Vlog == "" || p.Tools.Vsim == "" {
			return Envelope{}, errors.New("validate-config: tool names must not be empty")
		}
	case "view_wave":
		if p.Tools.Vsim == "" {
			return Envelope{}, errors.New("validate-config: tool names must not be empty")
		}
	case "clean":
		// Only SimDir is needed.
	default:
		return Envelope{}, fmt.Errorf("validate-config: invalid action: %s", in.Meta.Action)
	}

	out := in
	meta := *in.Meta
	meta.LibDir = p.SimDir
	meta.LogPath = filepath.Join(p.SimDir, logFileName)
	meta.WavePath = filepath.Join(p.SimDir, waveFileName)
	out.Meta = &meta
	if len(out.Sources) == 0 && len(p.Files) > 0 {
		out.Sources = append([]string(nil), p.Files...)
	}
	return out, nil
}

func init() { Register("validate-config", validateConfigRunner) }
