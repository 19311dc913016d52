package stage

import (
	"context"
	"fmt"

	"github.com/flarebyte/wavesmith/internal/config"
)

// fakeRunner records invocations instead of spawning processes. failAt
// makes the Nth call (1-based) fail with an ExitError.
type fakeRunner struct {
	calls  []Invocation
	failAt int
}

func (f *fakeRunner) Run(ctx context.Context, inv Invocation) error {
	f.calls = append(f.calls, inv)
	if f.failAt > 0 && len(f.calls) == f.failAt {
		return &ExitError{Program: inv.Program, Code: 2}
	}
	return nil
}

func testProject() config.Project {
	p := config.Default()
	p.Top = "d1_test"
	p.Files = []string{"src/d1_design.v", "src/d1_test.v"}
	return p
}

// validatedEnvelope runs validate-config over a fresh envelope for action.
func validatedEnvelope(action string, prj *config.Project) (Envelope, error) {
	env, err := Run(context.Background(), "validate-config", NewEnvelope(action, prj), Deps{})
	if err != nil {
		return Envelope{}, fmt.Errorf("validate-config: %w", err)
	}
	return env, nil
}
