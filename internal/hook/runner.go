package hook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Result holds the outcome of one command invocation. Stdout is captured
// so a chatty compile never leaks onto the hook's own streams; the hook
// only ever inspects ExitCode and Stderr.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner abstracts command execution for testability. The primary
// implementation is ExecRunner; tests substitute a mock to verify
// dispatch without spawning processes.
type Runner interface {
	// Run executes name with args, waits for it to finish, and returns
	// its exit code and captured output. A non-zero exit is reported via
	// Result, not as an error; the error return is reserved for failures
	// to start the command at all.
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- argv comes from validated configuration

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("starting %s: %w", name, err)
	}

	return result, nil
}
