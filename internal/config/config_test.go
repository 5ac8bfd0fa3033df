package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interact.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
scene: levels/hall.json
scanner:
  radius: 3.5
  interval: 250ms
  show_radius: false
keys:
  interact: f
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Scene != "levels/hall.json" {
		t.Errorf("Expected scene override, got %q", cfg.Scene)
	}
	if cfg.Scanner.Radius != 3.5 {
		t.Errorf("Expected radius 3.5, got %v", cfg.Scanner.Radius)
	}
	if cfg.Scanner.Interval != 250*time.Millisecond {
		t.Errorf("Expected 250ms interval, got %v", cfg.Scanner.Interval)
	}
	if cfg.Scanner.ShowRadius {
		t.Error("Expected show_radius false")
	}
	// Untouched fields keep their defaults
	if cfg.Window.Width != 1280 || cfg.Keys.Debug != "F1" {
		t.Errorf("Defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsInvalidScanner(t *testing.T) {
	path := writeConfig(t, `
scanner:
  radius: 0
  interval: -1s
`)

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("Expected ErrInvalidRadius, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("Expected ErrInvalidInterval, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "scanner: [radius")
	if _, err := Load(path); err == nil {
		t.Error("Expected unmarshal error")
	}
}

func TestParseKey(t *testing.T) {
	cases := map[string]int32{
		"E":     rl.KeyE,
		"e":     rl.KeyE,
		"F1":    rl.KeyF1,
		"space": rl.KeySpace,
		"7":     rl.KeySeven,
	}
	for name, want := range cases {
		got, err := ParseKey(name)
		if err != nil {
			t.Errorf("ParseKey(%q) failed: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseKey(%q) = %d, want %d", name, got, want)
		}
	}

	if _, err := ParseKey("Hyper"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
}

func TestScannerOffset(t *testing.T) {
	s := ScannerConfig{AnchorOffset: [3]float32{1, 2, 3}}
	if s.Offset() != (rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Unexpected offset %v", s.Offset())
	}
}
