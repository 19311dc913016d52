package stage

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// cleanRunner removes the simulation directory and everything under it.
// A missing directory is not an error.
func cleanRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	if in.Meta == nil || in.Meta.Project == nil {
		return Envelope{}, errors.New("clean: missing project configuration")
	}
	simDir := in.Meta.Project.SimDir
	if err := os.RemoveAll(simDir); err != nil {
		return Envelope{}, fmt.Errorf("clean: %s: %w", simDir, err)
	}
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintln(out, "Cleaned simulation directory."); err != nil {
		return Envelope{}, err
	}
	return in, nil
}

func init() { Register("clean", cleanRunner) }
