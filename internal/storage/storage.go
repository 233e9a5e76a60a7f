package storage

import (
	"exr/internal/config"
	"exr/internal/domain"
)

// Storage persists and loads test run reports (e.g. for the fails viewer).
type Storage interface {
	Save(projectDir, exercise string, report *domain.Report) error
	Load(projectDir string) (*domain.ReportDocument, error)
}

// JSONStorage stores reports in a JSON file under the project's build directory.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's report path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
