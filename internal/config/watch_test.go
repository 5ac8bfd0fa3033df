package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsConfigWrites(t *testing.T) {
	path := writeConfig(t, "scanner:\n  radius: 1\n")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored
	other := filepath.Join(filepath.Dir(path), "notes.txt")
	if err := os.WriteFile(other, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("scanner:\n  radius: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "interact.yaml" {
			t.Errorf("Expected event for interact.yaml, got %q", got)
		}
	case err := <-w.Errors:
		t.Fatalf("Watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for config event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := writeConfig(t, "")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("First Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Second Close failed: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events should be closed after Close")
	}
}
