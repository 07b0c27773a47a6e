package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_NoFileIsNop(t *testing.T) {
	log, err := New("", "info")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if log == nil {
		t.Fatal("New() returned nil logger")
	}
	// A nop logger must swallow writes without side effects.
	log.Info("ignored")
}

func TestNew_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "rolo.log")

	log, err := New(file, "debug")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Debug("session started")
	_ = log.Sync()

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file = %q, want to contain %q", data, "session started")
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "rolo.log")

	log, err := New(file, "warn")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Debug("too quiet")
	log.Warn("loud enough")
	_ = log.Sync()

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if strings.Contains(string(data), "too quiet") {
		t.Error("debug entry should be filtered at warn level")
	}
	if !strings.Contains(string(data), "loud enough") {
		t.Errorf("log file = %q, want warn entry", data)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("/tmp/rolo.log", "loud"); err == nil {
		t.Fatal("New() should reject an unknown level")
	}
}
