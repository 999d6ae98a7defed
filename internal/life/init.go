package life

import (
	"bufio"
	"os"
	"strings"
	"time"

	"lifebox/internal/config"
	"lifebox/internal/core"
	"lifebox/internal/log"
	pkgcore "lifebox/pkg/core"
)

// Randomize fills the grid with a 50/50 alive/dead pattern in row-major
// order. A zero seed is replaced with a time-derived one; the effective seed
// is returned so callers can log or reuse it. Identical nonzero seeds yield
// identical boards.
func Randomize(g *core.Grid, seed uint64) uint64 {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := pkgcore.NewRNG(seed)
	rows, cols := g.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Bool() {
				g.Set(r, c, core.Alive)
			} else {
				g.Set(r, c, core.Dead)
			}
		}
	}
	return seed
}

// ApplyPattern clears the grid and loads the manual pattern that follows the
// @grid directive in the configuration file at path. It returns the number of
// pattern rows consumed.
//
// Within a pattern line a column cursor advances only on recognized
// characters: '1', '#', '*', 'X' set the cell alive, '0', '.' and space leave
// it dead, anything else (separators and the like) is skipped without
// consuming a column. Rows beyond the grid height are ignored; a shortfall is
// logged as a warning and is not an error.
func ApplyPattern(g *core.Grid, path string) (int, error) {
	g.Clear()

	f, err := os.Open(path)
	if err != nil {
		return 0, &config.FileError{Path: path, Err: err}
	}
	defer f.Close()

	rows, cols := g.Dims()
	inGrid := false
	row := 0

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "@grid") {
			inGrid = true
			row = 0
			continue
		}
		if !inGrid || strings.HasPrefix(line, "@") {
			continue
		}
		if row >= rows {
			continue
		}
		col := 0
		for i := 0; i < len(line) && col < cols; i++ {
			switch line[i] {
			case '1', '#', '*', 'X':
				g.Set(row, col, core.Alive)
				col++
			case '0', '.', ' ':
				g.Set(row, col, core.Dead)
				col++
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return row, &config.FileError{Path: path, Err: err}
	}

	if inGrid && row < rows {
		logger := log.WithComponent("pattern")
		logger.Warn().
			Int("have", row).
			Int("want", rows).
			Msg("pattern supplies fewer rows than the grid; remainder stays dead")
	}
	return row, nil
}
