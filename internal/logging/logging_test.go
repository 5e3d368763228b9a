package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesJSONLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "debug.log")
	logger, closer, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("task added", "id", "t-1")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimSpace(string(b))
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("expected a JSON line; got %q: %v", line, err)
	}
	if rec["msg"] != "task added" || rec["id"] != "t-1" || rec["level"] != "DEBUG" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := New("  ")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("ignored")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNew_UnwritablePathFails(t *testing.T) {
	// A regular file cannot hold children, so the log can never be created.
	parent := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(parent, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := New(filepath.Join(parent, "debug.log")); err == nil {
		t.Fatalf("expected an error for a log path under a regular file")
	}
}
