//go:build !ebiten

package app

import (
	"fmt"

	"lifebox/internal/config"
	"lifebox/internal/core"
	"lifebox/internal/telemetry"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*core.Grid, config.Config, int, *telemetry.Recorder) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Generation returns zero in the headless build.
func (g *Game) Generation() uint64 { return 0 }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
