package execution

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"exr/internal/domain"
)

// ExecRunner runs commands as real child processes
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command synchronously, killing it when the timeout expires.
// A timed-out run reports TimedOut with whatever output was written before termination.
func (r *ExecRunner) Run(name string, args []string, dir string, timeout time.Duration) domain.RunResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	start := time.Now()
	output, err := cmd.CombinedOutput()

	result := domain.RunResult{
		Output:   string(output),
		Duration: time.Since(start),
	}

	if ctx.Err() == context.DeadlineExceeded {
		result.TimedOut = true
		result.ExitCode = -1
		return result
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			// Spawn failure (binary missing, permission denied)
			result.ExitCode = -1
			result.Err = err
		}
	}

	return result
}
