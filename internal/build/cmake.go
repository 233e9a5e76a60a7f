package build

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"exr/internal/config"
	"exr/internal/execution"
)

// Error is a failed build step carrying the external tool's log so the
// caller can surface it verbatim.
type Error struct {
	Stage string // "configure" or "compile"
	Log   string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s failed", e.Stage)
}

func (e *Error) Unwrap() error { return e.Err }

// CMake configures and compiles an exercise project and locates the
// resulting test executable. The project is always built with every tagged
// test enabled so the binary never needs recompiling between tag runs.
type CMake struct {
	config *config.Config
	runner execution.Runner
}

// NewCMake creates a new CMake build invoker
func NewCMake(cfg *config.Config, runner execution.Runner) *CMake {
	return &CMake{config: cfg, runner: runner}
}

// Build compiles the project from a fresh build directory and returns the
// path of the test executable.
func (c *CMake) Build(projectDir string) (string, error) {
	buildDir := c.config.GetBuildDir(projectDir)

	// The build dir is owned by this invocation; recreate it so stale
	// caches from a previous exercise state never leak in.
	if err := os.RemoveAll(buildDir); err != nil {
		return "", fmt.Errorf("clean build dir: %w", err)
	}
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return "", fmt.Errorf("create build dir: %w", err)
	}

	configureArgs := []string{"-S", projectDir, "-B", buildDir, "-DEXERCISM_RUN_ALL_TESTS=ON"}
	result := c.runner.Run("cmake", configureArgs, projectDir, c.config.BuildTimeout)
	if result.Err != nil {
		return "", &Error{Stage: "configure", Log: result.Output, Err: fmt.Errorf("cmake not runnable (is it installed?): %w", result.Err)}
	}
	if !result.Success() {
		return "", &Error{Stage: "configure", Log: result.Output, Err: timeoutErr(result.TimedOut)}
	}

	result = c.runner.Run("cmake", []string{"--build", buildDir}, projectDir, c.config.BuildTimeout)
	if !result.Success() {
		return "", &Error{Stage: "compile", Log: result.Output, Err: timeoutErr(result.TimedOut)}
	}

	executable, err := FindExecutable(buildDir, filepath.Base(projectDir))
	if err != nil {
		return "", err
	}
	return executable, nil
}

// FindExecutable locates the test binary in the build directory: an
// executable regular file whose name matches the exercise slug, falling back
// to the most recently modified executable.
func FindExecutable(buildDir, exercise string) (string, error) {
	want := normalizeName(exercise)

	var newest string
	var newestTime time.Time

	err := filepath.WalkDir(buildDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// CMake's own helper binaries live under CMakeFiles
			if d.Name() == "CMakeFiles" {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() || info.Mode().Perm()&0111 == 0 {
			return nil
		}

		if normalizeName(d.Name()) == want {
			newest = path
			return filepath.SkipAll
		}
		if info.ModTime().After(newestTime) {
			newest = path
			newestTime = info.ModTime()
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scan build dir: %w", err)
	}
	if newest == "" {
		return "", fmt.Errorf("no executable found in %s", buildDir)
	}
	return newest, nil
}

// normalizeName makes slug comparison insensitive to dash/underscore style
func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "-", "_"))
}

func timeoutErr(timedOut bool) error {
	if timedOut {
		return fmt.Errorf("timed out")
	}
	return nil
}
