package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"exr/internal/config"
	"exr/internal/domain"
)

// Formatter formats and displays run output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

const bannerWidth = 50

// PrintHeader prints a blue section banner
func (f *Formatter) PrintHeader(text string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Println()
	color.Blue(rule)
	color.Blue(text)
	color.Blue(rule)
	fmt.Println()
}

// PrintStep prints a numbered pipeline step
func (f *Formatter) PrintStep(step, total int, text string) {
	color.Yellow("[%d/%d] %s", step, total, text)
}

// PrintBuildSuccess prints the located executable after a successful build
func (f *Formatter) PrintBuildSuccess(executable string) {
	color.Green("✓ Build successful")
	color.Blue("  Executable: %s", executable)
}

// PrintBuildFailure surfaces the build tool's log verbatim
func (f *Formatter) PrintBuildFailure(stage, log string) {
	color.Red("✗ Build failed (%s)", stage)
	if log != "" {
		fmt.Println(log)
	}
}

// PrintNoTags announces the fallback to a single unfiltered run
func (f *Formatter) PrintNoTags() {
	color.Yellow("No task tags found, running all tests...")
}

// PrintRunPlan announces the progressive execution
func (f *Formatter) PrintRunPlan(tagCount int) {
	color.Blue("Progressive test execution: %d test task(s)", tagCount)
	fmt.Println()
}

// PrintReport prints per-run results, the failing output and the partition summary
func (f *Formatter) PrintReport(report *domain.Report) {
	for _, run := range report.Runs {
		if run.Passed {
			color.Green("✓ %s passed (%d assertions in %d test case(s))", run.Tag, run.Assertions, run.TestCases)
			if f.config.Flags.ShowSuccess && run.Output != "" {
				fmt.Println(run.Output)
			}
			continue
		}

		switch run.FailureKind() {
		case "timeout":
			color.Red("✗ %s timed out after %s", run.Tag, f.config.TestTimeout)
		default:
			color.Red("✗ %s failed", run.Tag)
		}
		f.printFailureOutput(run)
	}

	if report.Failed != nil {
		f.printPartition(report)
		return
	}

	f.printSuiteResult(report)
}

func (f *Formatter) printFailureOutput(run domain.TagRun) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Println()
	color.Red(rule)
	color.Red("Test Output:")
	color.Red(rule)
	fmt.Println(run.Output)

	for _, failure := range run.Failures {
		color.Red("  %s:%d", failure.File, failure.Line)
		if failure.Expression != "" {
			color.Red("    %s", failure.Expression)
		}
		if failure.Expansion != "" {
			color.Yellow("    evaluated as: %s", failure.Expansion)
		}
	}
}

func (f *Formatter) printPartition(report *domain.Report) {
	fmt.Println()
	color.Yellow("Summary:")
	passed := "None"
	if len(report.Passed) > 0 {
		passed = strings.Join(report.Passed, ", ")
	}
	color.Green("  Passed: %s", passed)
	color.Red("  Failed: %s (%s)", report.Failed.Tag, report.Failed.FailureKind())
	if len(report.NotRun) > 0 {
		color.Yellow("  Not tested: %s", strings.Join(report.NotRun, ", "))
	}
}

func (f *Formatter) printSuiteResult(report *domain.Report) {
	if !report.SuiteRan || report.Suite == nil {
		return
	}

	rule := strings.Repeat("=", bannerWidth)
	fmt.Println()
	if report.Suite.Passed {
		color.Green(rule)
		color.Green("✓ All tests passed!")
		if len(report.Passed) > 0 {
			color.Green("  Completed tasks: %s", strings.Join(report.Passed, ", "))
		}
		color.Green(rule)
		return
	}

	// Every tag passed on its own; the combined run did not.
	color.Red(rule)
	if report.Suite.TimedOut {
		color.Red("✗ Complete test suite timed out")
	} else {
		color.Red("✗ Complete test suite failed")
	}
	if len(report.Passed) > 0 {
		color.Yellow("  Each task passed individually; the full suite did not.")
	}
	color.Red(rule)
	fmt.Println(report.Suite.Output)
}

// PrintTagList lists the extracted tags in execution order
func (f *Formatter) PrintTagList(exercise string, tagList []string) {
	if len(tagList) == 0 {
		color.Yellow("No task tags found in %s", exercise)
		return
	}
	color.Blue("Found %d test task(s) in %s:", len(tagList), exercise)
	for i, tag := range tagList {
		fmt.Printf("  %d. %s\n", i+1, tag)
	}
}
