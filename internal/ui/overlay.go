//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the generation counter and live-cell count in the top-left
// corner of the view.
type Overlay struct {
	hidden bool
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update handles the visibility toggle (H key).
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw paints the status line.
func (o *Overlay) Draw(screen *ebiten.Image, generation uint64, alive int) {
	if o.hidden {
		return
	}
	msg := fmt.Sprintf("gen %d  alive %d", generation, alive)
	text.Draw(screen, msg, basicfont.Face7x13, 4, 14, color.White)
}
