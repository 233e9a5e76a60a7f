package execution

import (
	"reflect"
	"testing"
	"time"

	"exr/internal/config"
	"exr/internal/domain"
	"exr/internal/parser"
)

// fakeRunner returns scripted results keyed by the filter argument
// ("[task_1]" etc., "" for the unfiltered suite run) and records every call.
type fakeRunner struct {
	results map[string]domain.RunResult
	calls   []string
}

func (f *fakeRunner) Run(name string, args []string, dir string, timeout time.Duration) domain.RunResult {
	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}
	f.calls = append(f.calls, filter)
	if result, ok := f.results[filter]; ok {
		return result
	}
	return domain.RunResult{ExitCode: 0, Output: "All tests passed (1 assertion in 1 test case)"}
}

func newProgressive(runner Runner) *Progressive {
	cfg := config.New()
	return NewProgressive(cfg, runner, parser.NewCatch2Parser())
}

func TestProgressive_AllPass(t *testing.T) {
	runner := &fakeRunner{}
	p := newProgressive(runner)

	tagList := []string{"task_1", "task_2", "task_3"}
	report, err := p.Execute("/tmp/build/lasagna", tagList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(report.Passed, tagList) {
		t.Errorf("expected all tags passed, got %v", report.Passed)
	}
	if report.Failed != nil {
		t.Errorf("expected no failed tag, got %v", report.Failed.Tag)
	}
	if len(report.NotRun) != 0 {
		t.Errorf("expected no not-run tags, got %v", report.NotRun)
	}
	if !report.SuiteRan || report.Suite == nil || !report.Suite.Passed {
		t.Error("expected suite validation to run and pass")
	}
	if !report.Success() {
		t.Error("expected overall success")
	}

	// Per-tag filtered runs in order, then one unfiltered run
	expectedCalls := []string{"[task_1]", "[task_2]", "[task_3]", ""}
	if !reflect.DeepEqual(runner.calls, expectedCalls) {
		t.Errorf("expected calls %v, got %v", expectedCalls, runner.calls)
	}
}

func TestProgressive_HaltsAtFirstFailure(t *testing.T) {
	runner := &fakeRunner{
		results: map[string]domain.RunResult{
			"[task_3]": {ExitCode: 1, Output: "assertions: 3 | 2 passed | 1 failed\ntest cases: 1 | 0 passed | 1 failed"},
		},
	}
	p := newProgressive(runner)

	report, err := p.Execute("/tmp/build/darts", []string{"task_1", "task_2", "task_3", "task_4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(report.Passed, []string{"task_1", "task_2"}) {
		t.Errorf("expected passed [task_1 task_2], got %v", report.Passed)
	}
	if report.Failed == nil || report.Failed.Tag != "task_3" {
		t.Fatalf("expected task_3 to fail, got %+v", report.Failed)
	}
	if report.Failed.FailureKind() != "assertion" {
		t.Errorf("expected assertion failure kind, got %s", report.Failed.FailureKind())
	}
	if !reflect.DeepEqual(report.NotRun, []string{"task_4"}) {
		t.Errorf("expected not-run [task_4], got %v", report.NotRun)
	}
	if report.SuiteRan {
		t.Error("suite validation must not run after a tag failure")
	}
	if report.Success() {
		t.Error("expected overall failure")
	}

	// task_4 must never be executed
	for _, call := range runner.calls {
		if call == "[task_4]" {
			t.Error("task_4 was executed after the failure")
		}
	}
}

func TestProgressive_TimeoutIsFailure(t *testing.T) {
	runner := &fakeRunner{
		results: map[string]domain.RunResult{
			"[task_2]": {ExitCode: -1, TimedOut: true, Output: "partial output"},
		},
	}
	p := newProgressive(runner)

	report, err := p.Execute("/tmp/build/lasagna", []string{"task_1", "task_2", "task_3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Failed == nil || report.Failed.Tag != "task_2" {
		t.Fatalf("expected task_2 to fail, got %+v", report.Failed)
	}
	if report.Failed.FailureKind() != "timeout" {
		t.Errorf("expected timeout failure kind, got %s", report.Failed.FailureKind())
	}
	if !reflect.DeepEqual(report.NotRun, []string{"task_3"}) {
		t.Errorf("expected not-run [task_3], got %v", report.NotRun)
	}
}

func TestProgressive_NoTagsRunsSuiteOnly(t *testing.T) {
	runner := &fakeRunner{}
	p := newProgressive(runner)

	report, err := p.Execute("/tmp/build/lasagna", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Passed) != 0 || report.Failed != nil || len(report.NotRun) != 0 {
		t.Errorf("expected empty partitions, got %+v", report)
	}
	if !report.SuiteRan || !report.Success() {
		t.Error("expected a passing unfiltered run")
	}
	if !reflect.DeepEqual(runner.calls, []string{""}) {
		t.Errorf("expected a single unfiltered call, got %v", runner.calls)
	}
}

func TestProgressive_SuiteFailureAfterAllTagsPass(t *testing.T) {
	runner := &fakeRunner{
		results: map[string]domain.RunResult{
			"": {ExitCode: 1, Output: "test cases: 4 | 3 passed | 1 failed"},
		},
	}
	p := newProgressive(runner)

	tagList := []string{"task_1", "task_2", "task_3", "task_4"}
	report, err := p.Execute("/tmp/build/lasagna", tagList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(report.Passed, tagList) {
		t.Errorf("expected every tag individually passed, got %v", report.Passed)
	}
	if report.Failed != nil {
		t.Error("a suite failure is distinct from a per-tag failure")
	}
	if !report.SuiteRan || report.Suite.Passed {
		t.Error("expected suite validation to run and fail")
	}
	if report.Success() {
		t.Error("expected overall failure")
	}
}

func TestProgressive_Idempotent(t *testing.T) {
	p := newProgressive(&fakeRunner{})
	tagList := []string{"task_1", "task_2"}

	first, _ := p.Execute("/tmp/build/lasagna", tagList)
	second, _ := p.Execute("/tmp/build/lasagna", tagList)

	if !reflect.DeepEqual(first.Passed, second.Passed) ||
		!reflect.DeepEqual(first.NotRun, second.NotRun) ||
		first.Success() != second.Success() {
		t.Error("expected identical partitions across runs")
	}
}
