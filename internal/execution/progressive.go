package execution

import (
	"path/filepath"
	"time"

	"exr/internal/config"
	"exr/internal/domain"
	"exr/internal/parser"
	"exr/internal/ui"
)

// Progressive executes a test binary once per tag, in order, stopping at the
// first failure. After all tags pass it validates the full suite with one
// unfiltered run. Strictly sequential, one child process per attempted run,
// no retries.
type Progressive struct {
	config   *config.Config
	runner   Runner
	parser   *parser.Catch2Parser
	progress *ui.ProgressBar
}

// NewProgressive creates a new Progressive runner
func NewProgressive(cfg *config.Config, runner Runner, catch2 *parser.Catch2Parser) *Progressive {
	return &Progressive{
		config: cfg,
		runner: runner,
		parser: catch2,
	}
}

// SetProgress sets the progress bar for the runner
func (p *Progressive) SetProgress(progress *ui.ProgressBar) {
	p.progress = progress
}

// Execute runs the binary per tag and returns the pass/fail/not-run partition.
// With no tags the runner goes straight to one unfiltered full-suite run.
func (p *Progressive) Execute(executable string, tagList []string) (*domain.Report, error) {
	start := time.Now()
	report := &domain.Report{Tags: tagList}

	passed, failed := 0, 0
	for i, tag := range tagList {
		args := append([]string{"[" + tag + "]"}, p.config.TestRunArgs...)
		result := p.runner.Run(executable, args, filepath.Dir(executable), p.config.TestTimeout)

		run := p.tagRun(tag, result)
		report.Runs = append(report.Runs, run)

		if run.Passed {
			passed++
			report.Passed = append(report.Passed, tag)
			p.update(passed, failed)
			continue
		}

		// Fail fast: record the partition and leave the rest untested
		failed++
		p.update(passed, failed)
		report.Failed = &run
		report.NotRun = append(report.NotRun, tagList[i+1:]...)
		p.finish()
		report.Duration = time.Since(start)
		return report, nil
	}

	// Full-suite validation surfaces cross-task interaction bugs that the
	// filtered runs cannot see.
	result := p.runner.Run(executable, nil, filepath.Dir(executable), p.config.TestTimeout)
	suite := p.tagRun("", result)
	report.SuiteRan = true
	report.Suite = &suite
	if suite.Passed {
		p.update(passed+1, failed)
	} else {
		p.update(passed, failed+1)
	}
	p.finish()

	report.Duration = time.Since(start)
	return report, nil
}

func (p *Progressive) tagRun(tag string, result domain.RunResult) domain.TagRun {
	run := domain.TagRun{
		Tag:      tag,
		Passed:   result.Success(),
		TimedOut: result.TimedOut,
		ExitCode: result.ExitCode,
		Output:   result.Output,
		Duration: result.Duration.Seconds(),
	}
	run.Assertions, run.TestCases = p.parser.ParseCounts(result.Output, run.Passed)
	if !run.Passed && !run.TimedOut {
		run.Failures = p.parser.ParseFailures(result.Output)
	}
	return run
}

func (p *Progressive) update(passed, failed int) {
	if p.progress != nil {
		p.progress.Update(passed, failed)
	}
}

func (p *Progressive) finish() {
	if p.progress != nil {
		p.progress.Finish()
	}
}
