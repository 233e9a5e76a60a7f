package storage

import (
	"reflect"
	"testing"

	"exr/internal/config"
	"exr/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	projectDir := t.TempDir()
	st := NewJSONStorage(config.New())

	report := &domain.Report{
		Tags:   []string{"task_1", "task_2", "task_3"},
		Passed: []string{"task_1"},
		Failed: &domain.TagRun{Tag: "task_2", ExitCode: 1, Output: "boom"},
		NotRun: []string{"task_3"},
	}

	if err := st.Save(projectDir, "darts", report); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	doc, err := st.Load(projectDir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if doc.Meta.Exercise != "darts" {
		t.Errorf("expected exercise darts, got %s", doc.Meta.Exercise)
	}
	if doc.Meta.TotalTags != 3 || doc.Meta.PassedTags != 1 {
		t.Errorf("unexpected meta counts: %+v", doc.Meta)
	}
	if !reflect.DeepEqual(doc.Report.Passed, report.Passed) ||
		!reflect.DeepEqual(doc.Report.NotRun, report.NotRun) {
		t.Errorf("partition did not round trip: %+v", doc.Report)
	}
	if doc.Report.Failed == nil || doc.Report.Failed.Tag != "task_2" {
		t.Errorf("failed run did not round trip: %+v", doc.Report.Failed)
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	st := NewJSONStorage(config.New())
	if _, err := st.Load(t.TempDir()); err == nil {
		t.Error("expected error when no report exists")
	}
}
