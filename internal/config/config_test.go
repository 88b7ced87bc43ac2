package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchGoDefaults(t *testing.T) {
	var cfg BreakoutConfig
	if err := Parse(DefaultYAML(), FormatYAML, &cfg); err != nil {
		t.Fatalf("parse embedded defaults: %v", err)
	}
	if want := DefaultBreakoutConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, want)
	}
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultBreakoutConfig().Layout()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"brick width", l.BrickW, 40},
		{"brick top", l.BrickTop, 65},
		{"paddle width", l.PaddleW, 80},
		{"paddle height", l.PaddleH, 10},
		{"paddle y", l.PaddleY, 350},
		{"ball size", l.BallSize, 10},
		{"spawn x", l.SpawnX, 295},
		{"spawn y", l.SpawnY, 275},
		{"side wall height", l.SideWallH, 360},
		{"gutter", l.Gutter, 40},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if l.TickPeriod != 50*time.Millisecond {
		t.Errorf("tick period = %v, want 50ms", l.TickPeriod)
	}
	if l.ReinsertDelay != 2*time.Second {
		t.Errorf("reinsert delay = %v, want 2s", l.ReinsertDelay)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		ok     bool
	}{
		{"defaults", func(*BreakoutConfig) {}, true},
		{"zero width", func(c *BreakoutConfig) { c.Screen.Width = 0 }, false},
		{"negative height", func(c *BreakoutConfig) { c.Screen.Height = -1 }, false},
		{"no columns", func(c *BreakoutConfig) { c.Bricks.Columns = 0 }, false},
		{"no rows", func(c *BreakoutConfig) { c.Bricks.Rows = 0 }, false},
		{"zero ball speed", func(c *BreakoutConfig) { c.Ball.Speed = 0 }, false},
		{"zero paddle speed", func(c *BreakoutConfig) { c.Paddle.Speed = 0 }, false},
		{"no lives", func(c *BreakoutConfig) { c.Gameplay.Lives = 0 }, false},
		{"zero rate", func(c *BreakoutConfig) { c.Gameplay.UpdateRate = 0 }, false},
		{"walls fill screen", func(c *BreakoutConfig) { c.Walls.Thickness = 300 }, false},
		{"one column paddle too wide", func(c *BreakoutConfig) { c.Bricks.Columns = 1 }, false},
		{"too many rows", func(c *BreakoutConfig) { c.Bricks.Rows = 40 }, false},
		{"zero delay", func(c *BreakoutConfig) { c.Gameplay.ReinsertDelayMS = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadFilePartialYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	data := "gameplay:\n  lives: 7\nball:\n  speed: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Gameplay.Lives != 7 || cfg.Ball.Speed != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Bricks.Columns != 14 {
		t.Errorf("unset keys should keep defaults, columns = %d", cfg.Bricks.Columns)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.toml")
	data := "[bricks]\ncolumns = 10\nrows = 4\n\n[gameplay]\nupdate_rate = 30\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Bricks.Columns != 10 || cfg.Bricks.Rows != 4 || cfg.Gameplay.UpdateRate != 30 {
		t.Errorf("toml values not applied: %+v", cfg)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("lives = %d, want default 3", cfg.Gameplay.Lives)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadFile() = %v, want ErrInvalid", err)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadBreakoutSearchOrder(t *testing.T) {
	dir := t.TempDir()
	orig := searchDirs
	searchDirs = func() []string { return []string{filepath.Join(dir, "none"), dir} }
	t.Cleanup(func() { searchDirs = orig })

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Errorf("without files expected embedded defaults, got %+v", cfg)
	}

	if err := os.WriteFile(filepath.Join(dir, "breakout.toml"), []byte("[gameplay]\nlives = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("lives = %d, want 9 from search dir", cfg.Gameplay.Lives)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		faster bool
	}{
		{DifficultyEasy, 5, false},
		{DifficultyNormal, 3, false},
		{DifficultyHard, 2, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("lives = %d, want %d", cfg.Gameplay.Lives, tt.lives)
			}
			if got := cfg.Ball.Speed > 7.5; got != tt.faster {
				t.Errorf("ball speed %v, faster = %v, want %v", cfg.Ball.Speed, got, tt.faster)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf(`ParsePreset("") = %q, %v`, p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf(`ParsePreset("hard") = %q, %v`, p, err)
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset error = %v, want ErrInvalid", err)
	}
}
