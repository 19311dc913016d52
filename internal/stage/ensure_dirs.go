package stage

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ensureDirsRunner creates the artifact and simulation directories,
// including missing parents. Calling it when they exist is a no-op.
func ensureDirsRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	if in.Meta == nil || in.Meta.Project == nil {
		return Envelope{}, errors.New("ensure-dirs: missing project configuration")
	}
	p := in.Meta.Project
	for _, dir := range []string{p.ArtifactDir, p.SimDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Envelope{}, fmt.Errorf("ensure-dirs: %s: %w", dir, err)
		}
	}
	return in, nil
}

func init() { Register("ensure-dirs", ensureDirsRunner) }
