package core

import (
	"fmt"
	"strings"
)

// maxCells caps a grid allocation. Requests beyond this are reported as an
// allocation error rather than handed to the runtime.
const maxCells = 1 << 28

// AllocError reports that the backing storage for a grid could not be
// acquired.
type AllocError struct {
	Rows int
	Cols int
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("cannot allocate %dx%d grid", e.Rows, e.Cols)
}

// Grid stores a rows×cols board of cell states in row-major order. The size
// is fixed for the lifetime of the grid.
type Grid struct {
	rows, cols int
	cells      []CellState
}

// NewGrid allocates an all-Dead grid with the given dimensions. Dimensions
// must be positive; that is checked by configuration loading, not here.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows > maxCells/cols {
		return nil, &AllocError{Rows: rows, Cols: cols}
	}
	return &Grid{rows: rows, cols: cols, cells: make([]CellState, rows*cols)}, nil
}

// Dims returns the grid dimensions.
func (g *Grid) Dims() (rows, cols int) { return g.rows, g.cols }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []CellState { return g.cells }

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Get returns the state at (r, c). Coordinates outside the grid are a caller
// bug, not a recoverable condition.
func (g *Grid) Get(r, c int) CellState { return g.cells[r*g.cols+c] }

// Set writes the state at (r, c). Same precondition as Get.
func (g *Grid) Set(r, c int, s CellState) { g.cells[r*g.cols+c] = s }

// Toggle flips the cell at (r, c) between Alive and Dead.
func (g *Grid) Toggle(r, c int) {
	idx := r*g.cols + c
	if g.cells[idx] == Alive {
		g.cells[idx] = Dead
		return
	}
	g.cells[idx] = Alive
}

// Clear resets every cell to Dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// AliveCount returns the number of Alive cells.
func (g *Grid) AliveCount() int {
	n := 0
	for _, s := range g.cells {
		if s == Alive {
			n++
		}
	}
	return n
}

// String renders the board one row per line, '#' for alive and '.' for
// anything else.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.Get(r, c) == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
