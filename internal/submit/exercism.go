package submit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"exr/internal/config"
	"exr/internal/execution"
)

// ExerciseConfig is the part of .exercism/config.json we care about
type ExerciseConfig struct {
	Files struct {
		Solution []string `json:"solution"`
	} `json:"files"`
}

// Submitter shells out to the exercism CLI with the solution files of a project
type Submitter struct {
	config *config.Config
	runner execution.Runner
	input  io.Reader
}

// NewSubmitter creates a new Submitter reading confirmations from input
func NewSubmitter(cfg *config.Config, runner execution.Runner, input io.Reader) *Submitter {
	return &Submitter{config: cfg, runner: runner, input: input}
}

// ReadConfig reads .exercism/config.json from the project directory.
// A missing config is not an error; it returns (nil, nil).
func ReadConfig(projectDir string) (*ExerciseConfig, error) {
	path := filepath.Join(projectDir, ".exercism", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read exercism config: %w", err)
	}
	var cfg ExerciseConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse exercism config: %w", err)
	}
	return &cfg, nil
}

// SolutionFiles returns the submittable solution files from the config
func SolutionFiles(cfg *ExerciseConfig) []string {
	if cfg == nil {
		return nil
	}
	var files []string
	for _, f := range cfg.Files.Solution {
		if strings.HasSuffix(f, ".cpp") {
			files = append(files, f)
		}
	}
	return files
}

// Submit submits the project's solution files. Without auto it asks for
// confirmation first. Skipped submissions (no config, no files, declined)
// return nil; only a failed submission command is an error.
func (s *Submitter) Submit(projectDir string, auto bool) error {
	cfg, err := ReadConfig(projectDir)
	if err != nil {
		return err
	}
	if cfg == nil {
		color.Yellow("No Exercism config found - skipping submission")
		return nil
	}

	files := SolutionFiles(cfg)
	if len(files) == 0 {
		color.Yellow("No solution files found - skipping submission")
		return nil
	}

	color.Yellow("Files: %s", strings.Join(files, ", "))

	if !auto && !s.confirm() {
		color.Yellow("Submission skipped")
		return nil
	}

	result := s.runner.Run("exercism", append([]string{"submit"}, files...), projectDir, s.config.SubmitTimeout)
	if result.Output != "" {
		fmt.Println(result.Output)
	}

	if result.Err != nil {
		color.Yellow("Tip: make sure the exercism CLI is installed and configured")
		return fmt.Errorf("run exercism CLI: %w", result.Err)
	}
	if result.TimedOut {
		return fmt.Errorf("submission timed out")
	}
	if result.ExitCode != 0 {
		if strings.Contains(result.Output, "No files you submitted have changed") {
			color.Yellow("Note: files unchanged since last submission")
		}
		return fmt.Errorf("exercism submit exited with status %d", result.ExitCode)
	}

	color.Green("✓ Successfully submitted to Exercism!")
	return nil
}

func (s *Submitter) confirm() bool {
	fmt.Print("Submit to Exercism? (y/N): ")
	reader := bufio.NewReader(s.input)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
