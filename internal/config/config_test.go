package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Embedded defaults %+v differ from hardcoded %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake failed: %v", err)
	}
	if cfg.TickInterval() != 80*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 80ms", cfg.TickInterval())
	}
	if cfg.Game.Variant != DefaultVariant {
		t.Errorf("Variant = %q, expected %q", cfg.Game.Variant, DefaultVariant)
	}

	grid := cfg.RuntimeConfig(800, 600, 0).Grid()
	if grid.Cols != 32 || grid.Rows != 24 {
		t.Errorf("Default grid = %dx%d, expected 32x24", grid.Cols, grid.Rows)
	}
}

func TestLoadSnakeSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "snake.yaml"), "timing:\n  tick_ms: 120\n")
	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timing.TickMS != 120 {
		t.Errorf("Local config should be used, tick_ms = %d", cfg.Timing.TickMS)
	}

	writeFile(t, filepath.Join(home, ".gridsnake", "configs", "snake.yaml"), "timing:\n  tick_ms: 100\n")
	cfg, err = LoadSnake("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timing.TickMS != 100 {
		t.Errorf("User config should win over local, tick_ms = %d", cfg.Timing.TickMS)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "timing:\n  tick_ms: 50\ngame:\n  variant: snake_reset\n")
	cfg, err = LoadSnake(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timing.TickMS != 50 || cfg.Game.Variant != "snake_reset" {
		t.Errorf("Custom path should win, got tick_ms=%d variant=%q", cfg.Timing.TickMS, cfg.Game.Variant)
	}
	if cfg.Grid.CellSize != 25 {
		t.Errorf("Missing values should keep defaults, cell_size = %d", cfg.Grid.CellSize)
	}
}

func TestLoadSnakeBrokenUserFileFallsThrough(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(home, ".gridsnake", "configs", "snake.yaml"), "timing: [not a map")
	writeFile(t, filepath.Join(work, "configs", "snake.yaml"), "timing:\n  tick_ms: 90\n")

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timing.TickMS != 90 {
		t.Errorf("Broken user config should be skipped, tick_ms = %d", cfg.Timing.TickMS)
	}
}

func TestLoadSnakeCustomErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Missing custom file should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "grid: {cell_size: nope}")
	if _, err := LoadSnake(bad); err == nil {
		t.Error("Unparseable custom file should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		in    SnakeConfig
		check func(SnakeConfig) bool
	}{
		{"zero config gets defaults", SnakeConfig{}, func(c SnakeConfig) bool {
			return c == DefaultSnakeConfig()
		}},
		{"negative tick", SnakeConfig{Timing: TimingConfig{TickMS: -5}}, func(c SnakeConfig) bool {
			return c.Timing.TickMS == 80
		}},
		{"max below min", SnakeConfig{Grid: GridConfig{MinCols: 300, MaxCols: 20}}, func(c SnakeConfig) bool {
			return c.Grid.MinCols == 300 && c.Grid.MaxCols == 300
		}},
		{"valid values kept", SnakeConfig{Grid: GridConfig{CellSize: 10, MinCols: 5, MinRows: 5, MaxCols: 50, MaxRows: 40}}, func(c SnakeConfig) bool {
			return c.Grid == GridConfig{CellSize: 10, MinCols: 5, MinRows: 5, MaxCols: 50, MaxRows: 40}
		}},
		{"sessions", SnakeConfig{Server: ServerConfig{MaxSessions: -1}}, func(c SnakeConfig) bool {
			return c.Server.MaxSessions == 64
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Validate()
			if !tt.check(cfg) {
				t.Errorf("Validate() = %+v", cfg)
			}
		})
	}
}

func TestHostKeyPath(t *testing.T) {
	home, _ := isolate(t)

	cfg := DefaultSnakeConfig()
	if got, want := cfg.HostKeyPath(), filepath.Join(home, ".gridsnake", "host_key"); got != want {
		t.Errorf("HostKeyPath() = %q, expected %q", got, want)
	}

	cfg.Server.HostKey = "/etc/gridsnake/key"
	if got := cfg.HostKeyPath(); got != "/etc/gridsnake/key" {
		t.Errorf("HostKeyPath() = %q, expected configured path", got)
	}
}
