package config

import (
	_ "embed"

	"github.com/vovakirdan/gridsnake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	bounds := core.DefaultGridBounds()
	return SnakeConfig{
		Grid: GridConfig{
			CellSize: bounds.CellSize,
			MinCols:  bounds.MinCols,
			MinRows:  bounds.MinRows,
			MaxCols:  bounds.MaxCols,
			MaxRows:  bounds.MaxRows,
		},
		Timing: TimingConfig{
			TickMS: int(core.DefaultTickInterval.Milliseconds()),
		},
		Game: GameConfig{
			Variant: DefaultVariant,
		},
		Server: ServerConfig{
			HTTPAddr:       ":8080",
			SSHAddr:        ":2222",
			IdleTimeoutMin: 30,
			MaxSessions:    64,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
