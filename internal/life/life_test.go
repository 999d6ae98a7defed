package life

import (
	"testing"

	"lifebox/internal/core"
)

func mustGrid(t *testing.T, rows, cols int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
	}
	return g
}

func assertAlive(t *testing.T, g *core.Grid, want map[[2]int]bool) {
	t.Helper()
	rows, cols := g.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			alive := g.Get(r, c) == core.Alive
			if alive != want[[2]int{r, c}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v\n%s", r, c, alive, want[[2]int{r, c}], g)
			}
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Set(1, 1, core.Alive)

	births, deaths := Step(g)

	if births != 0 || deaths != 1 {
		t.Fatalf("births=%d deaths=%d, expected 0 and 1", births, deaths)
	}
	assertAlive(t, g, nil)
}

func TestStepPreservesDimensions(t *testing.T) {
	g := mustGrid(t, 7, 11)
	Randomize(g, 3)
	Step(g)
	rows, cols := g.Dims()
	if rows != 7 || cols != 11 {
		t.Fatalf("dimensions changed to %dx%d", rows, cols)
	}
}

func TestNoTransientStatesAfterStep(t *testing.T) {
	g := mustGrid(t, 8, 8)
	Randomize(g, 99)
	Step(g)
	for i, s := range g.Cells() {
		if s != core.Dead && s != core.Alive {
			t.Fatalf("cell %d left in transient state %v", i, s)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.Set(1, 2, core.Alive)
	g.Set(2, 2, core.Alive)
	g.Set(3, 2, core.Alive)

	Step(g)
	assertAlive(t, g, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})

	Step(g)
	assertAlive(t, g, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})
}

// A full 1x3 row shows that cells already marked dying earlier in the sweep
// still count as live neighbors: the middle cell sees its dying left
// neighbor plus its live right neighbor and survives. An implementation that
// stops counting dying cells would wipe the whole row.
func TestDyingNeighborsStillCount(t *testing.T) {
	g := mustGrid(t, 1, 3)
	g.Set(0, 0, core.Alive)
	g.Set(0, 1, core.Alive)
	g.Set(0, 2, core.Alive)

	Step(g)
	assertAlive(t, g, map[[2]int]bool{{0, 1}: true})
}

// Cells marked birthing earlier in the sweep must not count as live
// neighbors. With a live top row over an empty one, (1,1) is marked birthing
// before (1,2) is visited; if the marker counted, (1,2) would see three
// neighbors and be born as well.
func TestBirthingNeighborsDoNotCount(t *testing.T) {
	g := mustGrid(t, 2, 3)
	g.Set(0, 0, core.Alive)
	g.Set(0, 1, core.Alive)
	g.Set(0, 2, core.Alive)

	Step(g)
	assertAlive(t, g, map[[2]int]bool{
		{0, 1}: true,
		{1, 1}: true,
	})
}

func TestEdgesDoNotWrap(t *testing.T) {
	// A vertical blinker hugging the left edge of a 3x3 board. With toroidal
	// wrapping every cell in the column would see two vertical neighbors and
	// the column would survive intact; on a finite board the ends starve.
	g := mustGrid(t, 3, 3)
	g.Set(0, 0, core.Alive)
	g.Set(1, 0, core.Alive)
	g.Set(2, 0, core.Alive)

	Step(g)
	assertAlive(t, g, map[[2]int]bool{
		{1, 0}: true,
		{1, 1}: true,
	})
}

func TestBlockIsStable(t *testing.T) {
	g := mustGrid(t, 4, 4)
	want := map[[2]int]bool{
		{1, 1}: true, {1, 2}: true,
		{2, 1}: true, {2, 2}: true,
	}
	for pos := range want {
		g.Set(pos[0], pos[1], core.Alive)
	}

	births, deaths := Step(g)
	if births != 0 || deaths != 0 {
		t.Fatalf("block changed: births=%d deaths=%d", births, deaths)
	}
	assertAlive(t, g, want)
}
