package config

import "time"

const (
	// DefaultWorkspaceName is the default Exercism workspace directory under $HOME
	DefaultWorkspaceName = "exercism"
	// DefaultTrackDir is the track directory name under the workspace
	DefaultTrackDir = "cpp"
	// DefaultBuildDirName is the build output directory inside a project
	DefaultBuildDirName = "build"
	// DefaultReportFileName is the persisted report file name inside the build dir
	DefaultReportFileName = "test-report.json"
	// DefaultTestTimeout bounds a single test-binary run
	DefaultTestTimeout = 30 * time.Second
	// DefaultBuildTimeout bounds the configure and compile steps each
	DefaultBuildTimeout = 2 * time.Minute
	// DefaultSubmitTimeout bounds the submission command
	DefaultSubmitTimeout = 30 * time.Second
)

// DefaultTestRunArgs are passed to every filtered test run (-s shows successful assertions)
var DefaultTestRunArgs = []string{"-s"}
