package execution

import (
	"time"

	"exr/internal/domain"
)

// Runner is the narrow port for child-process execution: arguments and a
// working directory in, exit status and captured output out. Everything that
// shells out (build tool, test binary, submission CLI) goes through it so
// tests can substitute a fake.
type Runner interface {
	Run(name string, args []string, dir string, timeout time.Duration) domain.RunResult
}
