// Package config provides YAML-based configuration loading for the Snake
// game and its servers.
package config

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// DefaultVariant is the game variant used when none is configured.
const DefaultVariant = "snake"

// SnakeConfig contains all configuration for the Snake game and its frontends.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Game   GameConfig   `yaml:"game"`
	Server ServerConfig `yaml:"server"`
}

// GridConfig defines cell size and grid clamping.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
	MinCols  int `yaml:"min_cols"`
	MinRows  int `yaml:"min_rows"`
	MaxCols  int `yaml:"max_cols"`
	MaxRows  int `yaml:"max_rows"`
}

// TimingConfig defines the simulation speed.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// GameConfig selects the game variant.
type GameConfig struct {
	Variant string `yaml:"variant"` // Registry ID, e.g. "snake" or "snake_reset"
}

// ServerConfig defines the SSH and HTTP server parameters.
type ServerConfig struct {
	HTTPAddr       string `yaml:"http_addr"`
	SSHAddr        string `yaml:"ssh_addr"`
	HostKey        string `yaml:"host_key"` // Empty means ~/.gridsnake/host_key
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
	MaxSessions    int    `yaml:"max_sessions"`
}

// Validate replaces missing or out-of-range values with usable ones.
func (c *SnakeConfig) Validate() {
	def := DefaultSnakeConfig()

	if c.Grid.CellSize <= 0 {
		c.Grid.CellSize = def.Grid.CellSize
	}
	if c.Grid.MinCols <= 0 {
		c.Grid.MinCols = def.Grid.MinCols
	}
	if c.Grid.MinRows <= 0 {
		c.Grid.MinRows = def.Grid.MinRows
	}
	if c.Grid.MaxCols < c.Grid.MinCols {
		c.Grid.MaxCols = max(def.Grid.MaxCols, c.Grid.MinCols)
	}
	if c.Grid.MaxRows < c.Grid.MinRows {
		c.Grid.MaxRows = max(def.Grid.MaxRows, c.Grid.MinRows)
	}

	if c.Timing.TickMS <= 0 {
		c.Timing.TickMS = def.Timing.TickMS
	}
	if c.Game.Variant == "" {
		c.Game.Variant = def.Game.Variant
	}

	if c.Server.HTTPAddr == "" {
		c.Server.HTTPAddr = def.Server.HTTPAddr
	}
	if c.Server.SSHAddr == "" {
		c.Server.SSHAddr = def.Server.SSHAddr
	}
	if c.Server.IdleTimeoutMin <= 0 {
		c.Server.IdleTimeoutMin = def.Server.IdleTimeoutMin
	}
	if c.Server.MaxSessions <= 0 {
		c.Server.MaxSessions = def.Server.MaxSessions
	}
}

// TickInterval returns the configured time between moves.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c SnakeConfig) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMin) * time.Minute
}

// Bounds converts the grid section to core grid bounds.
func (c SnakeConfig) Bounds() core.GridBounds {
	return core.GridBounds{
		CellSize: c.Grid.CellSize,
		MinCols:  c.Grid.MinCols,
		MinRows:  c.Grid.MinRows,
		MaxCols:  c.Grid.MaxCols,
		MaxRows:  c.Grid.MaxRows,
	}.Normalize()
}

// RuntimeConfig builds the runtime configuration for a session with the
// given viewport.
func (c SnakeConfig) RuntimeConfig(viewportW, viewportH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ViewportW:    viewportW,
		ViewportH:    viewportH,
		Bounds:       c.Bounds(),
		TickInterval: c.TickInterval(),
		Seed:         seed,
	}
}
