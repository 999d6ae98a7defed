//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"lifebox/internal/config"
	"lifebox/internal/core"
	"lifebox/internal/life"
	"lifebox/internal/log"
	"lifebox/internal/render"
	"lifebox/internal/telemetry"
	"lifebox/internal/ui"
)

// pauseDelay is the one-shot wait inserted before the next step when the
// user hits Space. Repeated presses extend the wait; the simulation always
// resumes by itself.
const pauseDelay = 500 * time.Millisecond

// Game adapts the simulation to the ebiten.Game interface.
type Game struct {
	grid    *core.Grid
	cfg     config.Config
	painter *render.GridPainter
	overlay *ui.Overlay
	rec     *telemetry.Recorder
	logger  zerolog.Logger

	onColor  color.Color
	offColor color.Color

	scale      int
	gate       core.DelayGate
	generation uint64
}

// New constructs a Game around an already initialized grid.
func New(grid *core.Grid, cfg config.Config, scale int, rec *telemetry.Recorder) *Game {
	rows, cols := grid.Dims()
	return &Game{
		grid:     grid,
		cfg:      cfg,
		painter:  render.NewGridPainter(cols, rows),
		overlay:  ui.NewOverlay(),
		rec:      rec,
		logger:   log.WithComponent("app"),
		onColor:  color.RGBA{G: 255, A: 255},
		offColor: color.Black,
		scale:    scale,
	}
}

// Generation returns the number of completed steps since the last reset.
func (g *Game) Generation() uint64 { return g.generation }

// Update handles input and advances the simulation by one generation unless
// a pause delay is pending.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.gate.Trigger(pauseDelay)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.cfg.Mode == config.ModeRandom {
		seed := life.Randomize(g.grid, g.cfg.Seed)
		g.generation = 0
		g.logger.Info().Uint64("seed", seed).Msg("grid reset")
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		row, col := y/g.scale, x/g.scale
		if g.grid.InBounds(row, col) {
			g.grid.Toggle(row, col)
		}
	}

	g.overlay.Update()

	if g.gate.Waiting() {
		return nil
	}

	births, deaths := life.Step(g.grid)
	g.generation++

	if err := g.rec.Record(telemetry.GenerationStats{
		Generation: g.generation,
		Alive:      g.grid.AliveCount(),
		Births:     births,
		Deaths:     deaths,
	}); err != nil {
		g.logger.Warn().Err(err).Msg("stats record failed")
	}

	if g.cfg.Steps > 0 && g.generation >= g.cfg.Steps {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current grid state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.generation, g.grid.AliveCount())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows, cols := g.grid.Dims()
	return cols * g.scale, rows * g.scale
}
