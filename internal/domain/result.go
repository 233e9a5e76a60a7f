package domain

import "time"

// RunResult is the outcome of one child-process invocation
type RunResult struct {
	ExitCode int           // Exit status of the process (-1 when it never ran)
	Output   string        // Combined stdout and stderr
	TimedOut bool          // Whether the run was killed by the timeout
	Duration time.Duration // Wall-clock time of the run
	Err      error         // Spawn error (binary missing etc.), not a non-zero exit
}

// Success reports whether the process ran to completion with exit status 0.
func (r RunResult) Success() bool {
	return r.Err == nil && !r.TimedOut && r.ExitCode == 0
}

// TagRun represents one execution of the test binary filtered to a single tag.
// A TagRun with an empty Tag is the unfiltered full-suite run.
type TagRun struct {
	Tag        string    `json:"tag"`
	Passed     bool      `json:"passed"`
	TimedOut   bool      `json:"timed_out,omitempty"`
	ExitCode   int       `json:"exit_code"`
	Output     string    `json:"output"`
	Assertions int       `json:"assertions"`
	TestCases  int       `json:"test_cases"`
	Failures   []Failure `json:"failures,omitempty"`
	Duration   float64   `json:"duration_seconds"`
}
