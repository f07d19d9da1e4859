package snake

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Snapshot returns a copy of the state for renderers.
func (g *Game) Snapshot() core.Snapshot {
	return core.Snapshot{
		Snake:     slices.Clone(g.snake),
		Food:      g.food,
		HasFood:   g.hasFood,
		Score:     g.score,
		GameOver:  g.gameOver,
		Grid:      g.grid,
		Direction: g.direction,
		Tick:      g.tick,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Grid: %dx%d\n", g.tick, g.score, g.grid.Cols, g.grid.Rows)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %s\n", len(g.snake), g.direction, g.nextDir)
	if len(g.snake) > 0 {
		fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d) present=%v\n", g.snake[0].X, g.snake[0].Y, g.food.X, g.food.Y, g.hasFood)
	}
	fmt.Fprintf(&b, "GameOver: %v\n", g.gameOver)
	return b.String()
}
