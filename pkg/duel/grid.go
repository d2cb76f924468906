package duel

import (
	"fmt"

	"duel-ca/pkg/core"
)

// Grid stores a fixed-size board of cells in row-major order with a second
// buffer for synchronous updates.
type Grid struct {
	cols, rows int
	cur        []CellState
	nxt        []CellState
}

// Births reports how many empty cells became each color during one step.
type Births = Counters

// NewGrid allocates an all-empty grid with the given dimensions.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 || cols > MaxArea/rows {
		return nil, fmt.Errorf("grid %dx%d: %w", cols, rows, ErrInvalidConfiguration)
	}
	total := cols * rows
	return &Grid{
		cols: cols,
		rows: rows,
		cur:  make([]CellState, total),
		nxt:  make([]CellState, total),
	}, nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cols, H: g.rows} }

// Cells exposes the current buffer. Callers must treat it as read-only.
func (g *Grid) Cells() []CellState { return g.cur }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.cols + x }

// Get returns the settled state of the cell at (x, y).
func (g *Grid) Get(x, y int) (CellState, error) {
	if !g.InBounds(x, y) {
		return Empty, fmt.Errorf("get (%d,%d) on %dx%d grid: %w", x, y, g.cols, g.rows, ErrOutOfRange)
	}
	return g.cur[g.Index(x, y)], nil
}

// SetCurrent writes state directly into the current buffer, bypassing the
// rule.
func (g *Grid) SetCurrent(x, y int, state CellState) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d) on %dx%d grid: %w", x, y, g.cols, g.rows, ErrOutOfRange)
	}
	g.cur[g.Index(x, y)] = state
	return nil
}

// CountNeighbors counts ColorA and ColorB cells among the in-bounds Moore
// neighbors of (x, y). The board does not wrap.
func (g *Grid) CountNeighbors(x, y int) (colorA, colorB int) {
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.rows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= g.cols {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			switch g.cur[ny*g.cols+nx] {
			case ColorA:
				colorA++
			case ColorB:
				colorB++
			}
		}
	}
	return colorA, colorB
}

// Step evaluates rule for every cell against the pre-step state, writes the
// results into the next buffer and swaps buffers. It returns the number of
// cells that went from empty to each color.
func (g *Grid) Step(rule Rule) Births {
	var births Births
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			idx := y*g.cols + x
			self := g.cur[idx]
			a, b := g.CountNeighbors(x, y)
			next := rule(self, a, b)
			g.nxt[idx] = next
			if self != Empty {
				continue
			}
			switch next {
			case ColorA:
				births.A++
			case ColorB:
				births.B++
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	return births
}

// Clear resets both buffers to empty.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Empty
		g.nxt[i] = Empty
	}
}
