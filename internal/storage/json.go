package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"exr/internal/domain"
)

// Save writes the report of a run to the project's report file.
func (s *JSONStorage) Save(projectDir, exercise string, report *domain.Report) error {
	output := domain.ReportDocument{
		Meta: domain.ReportMeta{
			Exercise:        exercise,
			TotalTags:       len(report.Tags),
			PassedTags:      len(report.Passed),
			Duration:        report.Duration.String(),
			DurationSeconds: report.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Report: *report,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := s.cfg.GetReportPath(projectDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads the last run's report for a project.
func (s *JSONStorage) Load(projectDir string) (*domain.ReportDocument, error) {
	path := s.cfg.GetReportPath(projectDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file (run the tests first?): %w", err)
	}
	var output domain.ReportDocument
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &output, nil
}
