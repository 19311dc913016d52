package stage

import (
	"context"
	"io"
)

// Deps carries the capabilities a stage may need. Exec defaults to the real
// process runner and Out to os.Stdout; tests substitute fakes.
type Deps struct {
	Exec CommandRunner
	Out  io.Writer
}

// Runner executes a stage.
type Runner func(ctx context.Context, in Envelope, deps Deps) (Envelope, error)

var registry = map[string]Runner{}

// Register adds a stage runner.
func Register(name string, r Runner) {
	registry[name] = r
}

// Run executes a registered stage by name.
func Run(ctx context.Context, name string, in Envelope, deps Deps) (Envelope, error) {
	r, ok := registry[name]
	if !ok {
		return Envelope{}, ErrUnknown{name: name}
	}
	return r(ctx, in, deps)
}

// ErrUnknown is returned when a stage is not found.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string { return "unknown stage: " + e.name }

// RunSequence executes the provided list of stage names in order,
// failing fast on the first error.
func RunSequence(ctx context.Context, names []string, in Envelope, deps Deps) (Envelope, error) {
	out := in
	var err error
	for _, name := range names {
		out, err = Run(ctx, name, out, deps)
		if err != nil {
			return Envelope{}, err
		}
	}
	return out, nil
}
