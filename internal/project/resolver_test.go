package project

import (
	"os"
	"path/filepath"
	"testing"

	"exr/internal/config"
)

func testConfig(workspace string) *config.Config {
	cfg := config.New()
	cfg.Workspace = workspace
	cfg.TrackDir = "cpp"
	return cfg
}

func TestResolver_Resolve(t *testing.T) {
	workspace := t.TempDir()

	// Exercise exists both under the track dir and at the workspace root;
	// the track dir must win.
	dirs := []string{
		"cpp/lasagna",
		"lasagna",
		"cpp/darts",
		"elyses-enchantments",
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(workspace, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	resolver := NewResolver(testConfig(workspace))

	t.Run("absolute path", func(t *testing.T) {
		want := filepath.Join(workspace, "cpp", "darts")
		got, err := resolver.Resolve(want)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("missing absolute path", func(t *testing.T) {
		_, err := resolver.Resolve(filepath.Join(workspace, "nope"))
		if err == nil {
			t.Error("expected error for missing absolute path")
		}
	})

	t.Run("track directory beats workspace root", func(t *testing.T) {
		got, err := resolver.Resolve("lasagna")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := filepath.Join(workspace, "cpp", "lasagna")
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("workspace root fallback", func(t *testing.T) {
		got, err := resolver.Resolve("elyses-enchantments")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := filepath.Join(workspace, "elyses-enchantments")
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := resolver.Resolve("does-not-exist-anywhere")
		if err == nil {
			t.Error("expected error for unknown project")
		}
	})
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing build descriptor", func(t *testing.T) {
		if err := Validate(dir); err == nil {
			t.Error("expected error without CMakeLists.txt")
		}
	})

	t.Run("valid project", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "CMakeLists.txt"), []byte("project(lasagna)"), 0644); err != nil {
			t.Fatalf("failed to create CMakeLists.txt: %v", err)
		}
		if err := Validate(dir); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestFindTestSource(t *testing.T) {
	dir := t.TempDir()

	t.Run("no test source", func(t *testing.T) {
		if _, err := FindTestSource(dir); err == nil {
			t.Error("expected error when no *_test.cpp exists")
		}
	})

	t.Run("finds test source", func(t *testing.T) {
		path := filepath.Join(dir, "lasagna_test.cpp")
		if err := os.WriteFile(path, []byte("// tests"), 0644); err != nil {
			t.Fatalf("failed to create test source: %v", err)
		}
		got, err := FindTestSource(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != path {
			t.Errorf("expected %s, got %s", path, got)
		}
	})
}
