package tags

import (
	"fmt"
	"os"
	"regexp"
)

// Extractor extracts task tags from a test source file
type Extractor struct {
	pattern *regexp.Regexp
}

// NewExtractor creates a new Extractor for Catch2 task tags ([task_1], [task_2], ...)
func NewExtractor() *Extractor {
	return &Extractor{
		pattern: regexp.MustCompile(`\[task_(\d+)\]`),
	}
}

// ExtractFile extracts tags from the file at path. A file without tags yields
// an empty slice, not an error; an unreadable file is an error.
func (e *Extractor) ExtractFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}
	return e.Extract(string(content)), nil
}

// Extract returns the unique tag labels in order of first appearance.
// First appearance defines execution order, so no sorting happens here.
func (e *Extractor) Extract(content string) []string {
	var ordered []string
	seen := make(map[string]bool)

	for _, match := range e.pattern.FindAllStringSubmatch(content, -1) {
		label := "task_" + match[1]
		if seen[label] {
			continue
		}
		seen[label] = true
		ordered = append(ordered, label)
	}

	return ordered
}
