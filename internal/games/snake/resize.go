package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Resize moves the game onto a new grid according to the game's resize policy.
//
// Under PolicyRemap every snake cell and the food are rescaled onto the new
// grid. Cells that collapse onto each other are merged, and gaps opened by
// upscaling are bridged from the head without growing the body. A snake left with
// fewer than three distinct cells, or one whose rebuilt body would cross
// itself, triggers a fresh Reset. Food that lands on the snake is re-rolled.
// After game over the remap only keeps the final board drawable.
func (g *Game) Resize(grid core.Grid) {
	grid = playableGrid(grid)

	if len(g.snake) == 0 {
		g.Reset(grid)
		return
	}
	if grid.SameSize(g.grid) {
		g.grid = grid
		return
	}
	if g.policy == PolicyReset {
		g.Reset(grid)
		return
	}

	old := g.grid
	length := len(g.snake)
	remapped := remapCells(g.snake, old, grid)
	food := core.RemapCell(g.food, old.Cols, old.Rows, grid.Cols, grid.Rows)
	g.grid = grid

	if g.gameOver {
		g.snake = remapped
		g.food = food
		return
	}

	if len(remapped) < minSnakeLen {
		g.Reset(grid)
		return
	}

	body, ok := bridge(remapped)
	if !ok {
		g.Reset(grid)
		return
	}
	// Bridged gaps must not lengthen the snake; only eating does that.
	g.snake = body[:min(len(body), max(length, minSnakeLen))]
	g.realign()

	if g.hasFood && !g.isSnakeAt(food) {
		g.food = food
	} else {
		g.spawnFood()
	}
}

// remapCells rescales cells onto the new grid, dropping duplicates while
// keeping head-to-tail order.
func remapCells(cells []core.Cell, from, to core.Grid) []core.Cell {
	out := make([]core.Cell, 0, len(cells))
	seen := make(map[core.Cell]struct{}, len(cells))
	for _, c := range cells {
		m := core.RemapCell(c, from.Cols, from.Rows, to.Cols, to.Rows)
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// bridge fills gaps between consecutive cells with axis-aligned steps
// (horizontal first) so every segment touches its neighbour again.
// ok is false when the rebuilt body would visit a cell twice.
func bridge(cells []core.Cell) (body []core.Cell, ok bool) {
	if len(cells) == 0 {
		return nil, true
	}

	body = make([]core.Cell, 0, len(cells))
	body = append(body, cells[0])
	seen := map[core.Cell]struct{}{cells[0]: {}}

	for _, next := range cells[1:] {
		cur := body[len(body)-1]
		for cur != next {
			switch {
			case cur.X < next.X:
				cur.X++
			case cur.X > next.X:
				cur.X--
			case cur.Y < next.Y:
				cur.Y++
			default:
				cur.Y--
			}
			if _, dup := seen[cur]; dup {
				return nil, false
			}
			seen[cur] = struct{}{}
			body = append(body, cur)
		}
	}
	return body, true
}

// realign points the snake away from its neck so the next tick cannot
// reverse into the body.
func (g *Game) realign() {
	if len(g.snake) < 2 {
		return
	}
	d, ok := core.DirectionBetween(g.snake[1], g.snake[0])
	if !ok {
		return
	}
	g.direction = d
	if g.nextDir == d.Opposite() {
		g.nextDir = d
	}
}
