package stage

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/flarebyte/wavesmith/internal/runmeta"
)

const summaryFileName = "run.meta.yaml"

// writeSummaryRunner records what a batch run produced, next to the outputs
// it describes.
func writeSummaryRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	if in.Meta == nil || in.Meta.Project == nil {
		return Envelope{}, errors.New("write-summary: missing project configuration")
	}
	p := in.Meta.Project
	summary := map[string]any{
		"action":   in.Meta.Action,
		"top":      p.Top,
		"sources":  append([]string(nil), in.Sources...),
		"log":      in.Meta.LogPath,
		"waveform": in.Meta.WavePath,
	}
	path := filepath.Join(p.SimDir, summaryFileName)
	if err := runmeta.Write(path, summary); err != nil {
		return Envelope{}, err
	}
	return in, nil
}

func init() { Register("write-summary", writeSummaryRunner) }
