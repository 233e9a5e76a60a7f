package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Workspace settings
	Workspace string // Exercism workspace root
	TrackDir  string // Track directory name under the workspace

	// Output settings
	BuildDirName   string
	ReportFileName string

	// Execution settings
	TestTimeout   time.Duration
	BuildTimeout  time.Duration
	SubmitTimeout time.Duration

	// Extra arguments passed to every filtered test run
	TestRunArgs []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Submit       bool
	ShowSuccess  bool
	TestTimeout  time.Duration
	BuildTimeout time.Duration
}

// New creates a new Config with defaults, applying .env and environment overrides
func New() *Config {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Workspace:      defaultWorkspace(),
		TrackDir:       DefaultTrackDir,
		BuildDirName:   DefaultBuildDirName,
		ReportFileName: DefaultReportFileName,
		TestTimeout:    DefaultTestTimeout,
		BuildTimeout:   DefaultBuildTimeout,
		SubmitTimeout:  DefaultSubmitTimeout,
	}
	cfg.TestRunArgs = make([]string, len(DefaultTestRunArgs))
	copy(cfg.TestRunArgs, DefaultTestRunArgs)

	if v := os.Getenv("EXR_WORKSPACE"); v != "" {
		cfg.Workspace = v
	}
	if v := os.Getenv("EXR_TRACK_DIR"); v != "" {
		cfg.TrackDir = v
	}
	if d, err := time.ParseDuration(os.Getenv("EXR_TEST_TIMEOUT")); err == nil && d > 0 {
		cfg.TestTimeout = d
	}
	if d, err := time.ParseDuration(os.Getenv("EXR_BUILD_TIMEOUT")); err == nil && d > 0 {
		cfg.BuildTimeout = d
	}
	if d, err := time.ParseDuration(os.Getenv("EXR_SUBMIT_TIMEOUT")); err == nil && d > 0 {
		cfg.SubmitTimeout = d
	}

	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.ApplyFlags(flags)
	return cfg
}

// ApplyFlags stores the flags and applies their overrides (flags beat env)
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.TestTimeout > 0 {
		c.TestTimeout = flags.TestTimeout
	}
	if flags.BuildTimeout > 0 {
		c.BuildTimeout = flags.BuildTimeout
	}
}

// GetTrackPath returns the track directory under the workspace root
func (c *Config) GetTrackPath() string {
	return filepath.Join(c.Workspace, c.TrackDir)
}

// GetBuildDir returns the build output directory for a project
func (c *Config) GetBuildDir(projectDir string) string {
	return filepath.Join(projectDir, c.BuildDirName)
}

// GetReportPath returns the full path to the persisted report for a project.
// Resolves to an absolute path so run and fails always read/write the same file regardless of cwd.
func (c *Config) GetReportPath(projectDir string) string {
	p := filepath.Join(c.GetBuildDir(projectDir), c.ReportFileName)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func defaultWorkspace() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultWorkspaceName
	}
	return filepath.Join(home, DefaultWorkspaceName)
}
