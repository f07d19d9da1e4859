package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// spawnAttemptsPerCell bounds rejection sampling before falling back to
// enumerating free cells.
const spawnAttemptsPerCell = 4

// spawnFood places food on a uniformly random cell not occupied by the snake.
//
// Rejection sampling is fast while the snake covers a small share of the grid.
// When it stops being fast, the free cells are enumerated instead, so placement
// stays uniform and terminates even on a nearly full board. A full board leaves
// no food at all.
func (g *Game) spawnFood() {
	area := g.grid.Area()
	if area <= 0 || len(g.snake) >= area {
		g.hasFood = false
		return
	}

	for range spawnAttemptsPerCell * area {
		c := core.Cell{X: g.rng.Intn(g.grid.Cols), Y: g.rng.Intn(g.grid.Rows)}
		if !g.isSnakeAt(c) {
			g.food = c
			g.hasFood = true
			return
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		g.hasFood = false
		return
	}
	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
}

// freeCells lists every grid cell the snake does not occupy.
func (g *Game) freeCells() []core.Cell {
	occupied := make(map[core.Cell]struct{}, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = struct{}{}
	}

	free := make([]core.Cell, 0, max(g.grid.Area()-len(occupied), 0))
	for y := range g.grid.Rows {
		for x := range g.grid.Cols {
			c := core.Cell{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}
