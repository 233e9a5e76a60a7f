package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"exr/internal/config"
)

// Resolver locates exercise project directories from user input
type Resolver struct {
	config *config.Config
}

// NewResolver creates a new Resolver
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{config: cfg}
}

// Resolve finds the project directory for the given input. Candidates are
// tried in priority order: absolute path, relative to the current directory,
// under the workspace track directory, then under the workspace root.
func (r *Resolver) Resolve(input string) (string, error) {
	if filepath.IsAbs(input) {
		if dirExists(input) {
			return filepath.Clean(input), nil
		}
		return "", fmt.Errorf("project directory does not exist: %s", input)
	}

	var tried []string
	candidates := []string{
		input,
		filepath.Join(r.config.GetTrackPath(), input),
		filepath.Join(r.config.Workspace, input),
	}

	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if dirExists(abs) {
			return abs, nil
		}
		tried = append(tried, abs)
	}

	return "", fmt.Errorf("project directory %q not found (tried %s)", input, strings.Join(tried, ", "))
}

// Validate checks that the directory is a buildable exercise project
func Validate(dir string) error {
	if !dirExists(dir) {
		return fmt.Errorf("project directory does not exist: %s", dir)
	}
	descriptor := filepath.Join(dir, "CMakeLists.txt")
	if _, err := os.Stat(descriptor); err != nil {
		return fmt.Errorf("CMakeLists.txt not found in %s", dir)
	}
	return nil
}

// FindTestSource returns the test source file of the project (first *_test.cpp)
func FindTestSource(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*_test.cpp"))
	if err != nil {
		return "", fmt.Errorf("scan for test source: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no test source (*_test.cpp) found in %s", dir)
	}
	sort.Strings(matches)
	return matches[0], nil
}

// Name returns the exercise name for a resolved project directory
func Name(dir string) string {
	return filepath.Base(filepath.Clean(dir))
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
