package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithoutPath(t *testing.T) {
	logger, file, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if logger == nil {
		t.Fatal("expected a non-nil logger")
	}
	if file != nil {
		t.Error("expected no file for an empty path")
	}

	// Must be safe to use even though everything is discarded.
	logger.Error("save failed", "err", "boom")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smallt.log")

	logger, file, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer file.Close()

	logger.Error("save failed", "path", "tasks.md")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "save failed") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestNewAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smallt.log")
	if err := os.WriteFile(path, []byte("existing line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	logger, file, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer file.Close()
	logger.Info("started")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "existing line\n") {
		t.Errorf("prior content lost: %q", data)
	}
	if !strings.Contains(string(data), "started") {
		t.Errorf("new entry missing: %q", data)
	}
}

func TestNewBadPath(t *testing.T) {
	// The log path is a directory; opening it for writing must fail loudly.
	if _, _, err := New(t.TempDir()); err == nil {
		t.Fatal("expected error opening a directory as log file")
	}
}
