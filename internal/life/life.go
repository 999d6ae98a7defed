// Package life implements the generation transition and the two ways a board
// gets its initial pattern.
package life

import (
	"lifebox/internal/core"
)

const (
	neighborsToBirth      = 3
	minNeighborsToSurvive = 2
	maxNeighborsToSurvive = 3
)

// Step advances the grid exactly one generation, in place, and returns how
// many cells were born and how many died.
//
// The marking pass walks the board in row-major order and writes the
// transient Dying/Birthing markers into the same buffer it is scanning, so a
// cell's neighbor count sees markers already applied to earlier cells: Dying
// still counts as alive, Birthing does not. The update is therefore
// order-dependent rather than a simultaneous double-buffered transition.
// That asymmetry is kept on purpose; see DESIGN.md.
func Step(g *core.Grid) (births, deaths int) {
	rows, cols := g.Dims()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := liveNeighbors(g, r, c)
			switch g.Get(r, c) {
			case core.Alive:
				if n < minNeighborsToSurvive || n > maxNeighborsToSurvive {
					g.Set(r, c, core.Dying)
				}
			case core.Dead:
				if n == neighborsToBirth {
					g.Set(r, c, core.Birthing)
				}
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			switch g.Get(r, c) {
			case core.Dying:
				g.Set(r, c, core.Dead)
				deaths++
			case core.Birthing:
				g.Set(r, c, core.Alive)
				births++
			}
		}
	}
	return births, deaths
}

// liveNeighbors counts the live cells among the 8 neighbors of (r, c).
// Positions outside the grid contribute nothing: the board is finite, with
// no wraparound.
func liveNeighbors(g *core.Grid, r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if !g.InBounds(nr, nc) {
				continue
			}
			if s := g.Get(nr, nc); s == core.Alive || s == core.Dying {
				n++
			}
		}
	}
	return n
}
