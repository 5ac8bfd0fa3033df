package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scene   string        `yaml:"scene"`
	Scanner ScannerConfig `yaml:"scanner"`
	Keys    KeyConfig     `yaml:"keys"`
}

type WindowConfig struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int32  `yaml:"fps"`
}

type ScannerConfig struct {
	Radius     float32       `yaml:"radius"`
	Interval   time.Duration `yaml:"interval"`
	ShowRadius bool          `yaml:"show_radius"`
	// AnchorOffset places the InteractPoint relative to the player.
	AnchorOffset [3]float32 `yaml:"anchor_offset"`
}

type KeyConfig struct {
	Interact string `yaml:"interact"`
	Debug    string `yaml:"debug"`
}

var (
	ErrInvalidRadius   = errors.New("scanner radius must be positive")
	ErrInvalidInterval = errors.New("scanner interval must be positive")
	ErrUnknownKey      = errors.New("unknown key name")
)

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Interaction Demo",
			FPS:    60,
		},
		Scene: "assets/scenes/demo.json",
		Scanner: ScannerConfig{
			Radius:       1.5,
			Interval:     100 * time.Millisecond,
			ShowRadius:   true,
			AnchorOffset: [3]float32{0, 1, -0.6},
		},
		Keys: KeyConfig{
			Interact: "E",
			Debug:    "F1",
		},
	}
}

// Load reads path over the defaults, so a file only needs the fields it
// changes.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Scanner.Radius <= 0 {
		errs = append(errs, fmt.Errorf("%w (got %v)", ErrInvalidRadius, c.Scanner.Radius))
	}
	if c.Scanner.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%w (got %v)", ErrInvalidInterval, c.Scanner.Interval))
	}
	if _, err := ParseKey(c.Keys.Interact); err != nil {
		errs = append(errs, fmt.Errorf("keys.interact: %w", err))
	}
	if _, err := ParseKey(c.Keys.Debug); err != nil {
		errs = append(errs, fmt.Errorf("keys.debug: %w", err))
	}
	return errors.Join(errs...)
}

func (s ScannerConfig) Offset() rl.Vector3 {
	return rl.Vector3{X: s.AnchorOffset[0], Y: s.AnchorOffset[1], Z: s.AnchorOffset[2]}
}

var namedKeys = map[string]int32{
	"SPACE": rl.KeySpace,
	"ENTER": rl.KeyEnter,
	"TAB":   rl.KeyTab,
	"F1":    rl.KeyF1,
	"F2":    rl.KeyF2,
	"F3":    rl.KeyF3,
	"F4":    rl.KeyF4,
}

// ParseKey maps a key name such as "E" or "F1" to a raylib key code.
func ParseKey(name string) (int32, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if key, ok := namedKeys[upper]; ok {
		return key, nil
	}
	if len(upper) == 1 {
		c := upper[0]
		if c >= 'A' && c <= 'Z' {
			return rl.KeyA + int32(c-'A'), nil
		}
		if c >= '0' && c <= '9' {
			return rl.KeyZero + int32(c-'0'), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKey, name)
}
