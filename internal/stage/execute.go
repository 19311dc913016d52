package stage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// CommandRunner executes one external command and reports failure. The real
// implementation spawns a child process; tests substitute a recorder.
type CommandRunner interface {
	Run(ctx context.Context, inv Invocation) error
}

// ExitError reports a child process that exited non-zero.
type ExitError struct {
	Program string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Program, e.Code)
}

// ExitCode makes the failure's status available to the process exit path.
func (e *ExitError) ExitCode() int {
	if e.Code > 0 {
		return e.Code
	}
	return 1
}

// osRunner spawns the command with stdio passed through, blocking until it
// exits. No capture, retry or timeout; cancellation comes from ctx.
type osRunner struct{}

func (osRunner) Run(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Program: inv.Program, Code: exitErr.ExitCode()}
		}
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return fmt.Errorf("program %s not found", inv.Program)
		}
		return fmt.Errorf("program %s execution failed: %v", inv.Program, err)
	}
	return nil
}

// NewOSRunner returns the production CommandRunner.
func NewOSRunner() CommandRunner { return osRunner{} }

// executeRunner runs the planned invocations in order, echoing each command
// line first and aborting on the first failure. Artifacts produced by
// earlier steps are left in place.
func executeRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	runner := deps.Exec
	if runner == nil {
		runner = osRunner{}
	}
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	for _, inv := range in.Plan {
		if _, err := fmt.Fprintf(out, "Running: %s\n", inv.String()); err != nil {
			return Envelope{}, err
		}
		if err := runner.Run(ctx, inv); err != nil {
			return Envelope{}, fmt.Errorf("execute: %w", err)
		}
	}
	return in, nil
}

func init() { Register("execute", executeRunner) }
