// Package snake implements the Snake game state: movement, growth, collision
// detection, food spawning and grid resizing.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// ResizePolicy selects what happens to a running game when the grid changes size.
type ResizePolicy string

const (
	// PolicyRemap rescales the snake and food onto the new grid and falls
	// back to a reset when the result would be degenerate.
	PolicyRemap ResizePolicy = "remap"
	// PolicyReset starts a new game on any size change.
	PolicyReset ResizePolicy = "reset"
)

// Game IDs registered with the registry.
const (
	IDRemap = "snake"
	IDReset = "snake_reset"
)

// minSnakeLen is the spawn length and the shortest snake a remap may keep.
const minSnakeLen = 3

// Game implements the Snake game.
type Game struct {
	policy ResizePolicy
	rng    *rand.Rand
	tick   uint64
	score  int

	// Snake state
	snake     []core.Cell // Head at index 0
	direction core.Direction
	nextDir   core.Direction // Pending direction, applied at the start of the next tick

	grid     core.Grid
	food     core.Cell
	hasFood  bool
	gameOver bool
}

// New creates a Snake game that remaps its state when the grid is resized.
func New() *Game {
	return newGame(PolicyRemap)
}

// NewResetOnResize creates a Snake game that restarts whenever the grid is resized.
func NewResetOnResize() *Game {
	return newGame(PolicyReset)
}

func newGame(policy ResizePolicy) *Game {
	return &Game{
		policy: policy,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func init() {
	registry.Register(IDRemap, func() registry.Game {
		return New()
	})
	registry.Register(IDReset, func() registry.Game {
		return NewResetOnResize()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.policy == PolicyReset {
		return IDReset
	}
	return IDRemap
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.policy == PolicyReset {
		return "Snake (Reset on Resize)"
	}
	return "Snake"
}

// Policy returns the resize policy of this game.
func (g *Game) Policy() ResizePolicy {
	return g.policy
}

// Seed replaces the RNG used for food placement.
func (g *Game) Seed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Reset starts a new game on the given grid: a 3-segment snake centred on the
// grid facing right, food on a random free cell, score 0.
func (g *Game) Reset(grid core.Grid) {
	grid = playableGrid(grid)

	g.grid = grid
	g.tick = 0
	g.score = 0
	g.gameOver = false

	head := core.Cell{X: grid.Cols / 2, Y: grid.Rows / 2}
	head.X = max(head.X, minSnakeLen-1)
	g.snake = make([]core.Cell, 0, minSnakeLen)
	for i := range minSnakeLen {
		g.snake = append(g.snake, head.Add(-i, 0))
	}
	g.direction = core.DirRight
	g.nextDir = core.DirRight

	g.spawnFood()
}

// playableGrid makes sure a grid can hold a freshly spawned snake.
func playableGrid(grid core.Grid) core.Grid {
	grid.Cols = max(grid.Cols, minSnakeLen)
	grid.Rows = max(grid.Rows, 1)
	if grid.CellSize <= 0 {
		grid.CellSize = core.DefaultCellSize
	}
	return grid
}

// SetDirection records the direction to apply on the next tick.
// A direct reversal of the current direction is ignored, as is any request
// after game over.
func (g *Game) SetDirection(d core.Direction) {
	if g.gameOver {
		return
	}
	if d == g.direction.Opposite() {
		return
	}
	g.nextDir = d
}

// Tick advances the game by one cell.
func (g *Game) Tick() core.StepResult {
	if g.gameOver || len(g.snake) == 0 {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.direction = g.nextDir
	newHead := g.snake[0].Step(g.direction)

	if !g.grid.Contains(newHead) {
		g.gameOver = true
		return core.StepResult{State: g.State(), Collision: core.CollisionWall}
	}

	// The tail has not moved yet, so it counts as an obstacle.
	if g.isSnakeAt(newHead) {
		g.gameOver = true
		return core.StepResult{State: g.State(), Collision: core.CollisionSelf}
	}

	g.snake = append(g.snake, core.Cell{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead

	ate := g.hasFood && newHead == g.food
	if ate {
		g.score++
		g.spawnFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	return core.StepResult{State: g.State(), Ate: ate}
}

// isSnakeAt checks if the snake occupies the given cell.
func (g *Game) isSnakeAt(c core.Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}
