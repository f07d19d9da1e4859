package core

import "math"

// DefaultCellSize is the pixel edge of one cell in the browser client.
const DefaultCellSize = 25

// Grid is the set of valid cells derived from a viewport.
type Grid struct {
	Cols     int `json:"cols"`
	Rows     int `json:"rows"`
	CellSize int `json:"cellSize"`
}

// GridBounds limits the grid a viewport may produce.
type GridBounds struct {
	CellSize int
	MinCols  int
	MinRows  int
	MaxCols  int
	MaxRows  int
}

// DefaultGridBounds returns the bounds used when no config overrides them.
func DefaultGridBounds() GridBounds {
	return GridBounds{
		CellSize: DefaultCellSize,
		MinCols:  10,
		MinRows:  10,
		MaxCols:  200,
		MaxRows:  200,
	}
}

// Normalize fixes missing or inverted bounds.
func (b GridBounds) Normalize() GridBounds {
	if b.CellSize <= 0 {
		b.CellSize = DefaultCellSize
	}
	b.MinCols = max(b.MinCols, 1)
	b.MinRows = max(b.MinRows, 1)
	b.MaxCols = max(b.MaxCols, b.MinCols)
	b.MaxRows = max(b.MaxRows, b.MinRows)
	return b
}

// ComputeGrid converts a viewport size into a cell grid.
// Columns and rows are floor(dimension / cell size), clamped to the bounds,
// so a zero or negative viewport yields the minimum grid.
func ComputeGrid(viewportW, viewportH int, b GridBounds) Grid {
	b = b.Normalize()
	cols := max(viewportW, 0) / b.CellSize
	rows := max(viewportH, 0) / b.CellSize
	return Grid{
		Cols:     Clamp(cols, b.MinCols, b.MaxCols),
		Rows:     Clamp(rows, b.MinRows, b.MaxRows),
		CellSize: b.CellSize,
	}
}

// PixelWidth returns the grid width in pixels.
func (g Grid) PixelWidth() int {
	return g.Cols * g.CellSize
}

// PixelHeight returns the grid height in pixels.
func (g Grid) PixelHeight() int {
	return g.Rows * g.CellSize
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.Cols * g.Rows
}

// Contains reports whether c is a valid cell of the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// SameSize reports whether both grids have the same dimensions in cells.
func (g Grid) SameSize(other Grid) bool {
	return g.Cols == other.Cols && g.Rows == other.Rows
}

// RemapCell rescales a cell's proportional position from the old grid onto the
// new one, rounding to the nearest cell and clamping to the new bounds.
func RemapCell(c Cell, oldCols, oldRows, newCols, newRows int) Cell {
	return Cell{
		X: remapAxis(c.X, oldCols, newCols),
		Y: remapAxis(c.Y, oldRows, newRows),
	}
}

func remapAxis(v, oldN, newN int) int {
	if newN <= 0 {
		return 0
	}
	if oldN <= 0 {
		return 0
	}
	scaled := math.Round(float64(v) * float64(newN) / float64(oldN))
	return Clamp(int(scaled), 0, newN-1)
}
