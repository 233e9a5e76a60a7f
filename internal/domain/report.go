package domain

import "time"

// Report is the aggregate outcome of a progressive test run.
// Passed, Failed and NotRun partition Tags: Failed is nil or a single run,
// and when set NotRun holds exactly the tags ordered after it.
type Report struct {
	Tags     []string      `json:"tags"`
	Passed   []string      `json:"passed"`
	Failed   *TagRun       `json:"failed,omitempty"`
	NotRun   []string      `json:"not_run"`
	Runs     []TagRun      `json:"runs"`
	SuiteRan bool          `json:"suite_ran"`
	Suite    *TagRun       `json:"suite,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Success reports whether every tag passed and the full-suite validation
// (which only runs after all tags pass) passed as well.
func (r *Report) Success() bool {
	if r.Failed != nil {
		return false
	}
	return r.SuiteRan && r.Suite != nil && r.Suite.Passed
}

// FailureKind classifies why a run failed, for display purposes.
func (r *TagRun) FailureKind() string {
	switch {
	case r.Passed:
		return ""
	case r.TimedOut:
		return "timeout"
	default:
		return "assertion"
	}
}

// ReportMeta contains metadata about a test run
type ReportMeta struct {
	Exercise        string  `json:"exercise"`
	TotalTags       int     `json:"total_tags"`
	PassedTags      int     `json:"passed_tags"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// ReportDocument is the complete persisted structure for a test run
type ReportDocument struct {
	Meta   ReportMeta `json:"meta"`
	Report Report     `json:"report"`
}
