package core

import "time"

// DefaultTickInterval is the fixed simulation period.
const DefaultTickInterval = 80 * time.Millisecond

// RuntimeConfig contains configuration passed to a session at start.
// Frontends fill the viewport from the terminal or browser window.
type RuntimeConfig struct {
	ViewportW    int           // Viewport width in pixels (browser) or cells (terminal)
	ViewportH    int           // Viewport height
	Bounds       GridBounds    // Grid clamping and cell size
	TickInterval time.Duration // Time between simulation ticks
	Seed         int64         // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig matching the reference 800x600 canvas.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewportW:    800,
		ViewportH:    600,
		Bounds:       DefaultGridBounds(),
		TickInterval: DefaultTickInterval,
	}
}

// Grid computes the grid for the configured viewport.
func (c RuntimeConfig) Grid() Grid {
	return ComputeGrid(c.ViewportW, c.ViewportH, c.Bounds)
}

// Collision describes why a tick ended the game.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// GameState is the coarse status of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Tick after each simulation step.
type StepResult struct {
	State     GameState
	Ate       bool      // Food was eaten this tick
	Collision Collision // Set on the tick that ended the game
}

// Snapshot is a read-only copy of everything a renderer needs.
// Slices are copies, so holders may keep it across ticks.
type Snapshot struct {
	Snake     []Cell    `json:"snake"`
	Food      Cell      `json:"food"`
	HasFood   bool      `json:"hasFood"`
	Score     int       `json:"score"`
	GameOver  bool      `json:"gameOver"`
	Grid      Grid      `json:"grid"`
	Direction Direction `json:"direction"`
	Tick      uint64    `json:"tick"`
}

// Head returns the snake head, or false for an empty snake.
func (s Snapshot) Head() (Cell, bool) {
	if len(s.Snake) == 0 {
		return Cell{}, false
	}
	return s.Snake[0], true
}
