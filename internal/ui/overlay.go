//go:build ebiten

package ui

import (
	"cgol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the grid: the frontier the
// last step evaluated (key 1) and the births and deaths of that step (key 2).
type Overlay struct {
	showFrontier bool
	showChanges  bool
	maskImg      *ebiten.Image
	maskBuf      []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFrontier = !o.showFrontier
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showChanges = !o.showChanges
	}
}

// Draw renders the enabled layers for sim onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, sim core.Sim, last core.Diff, scale int) {
	if !o.showFrontier && !o.showChanges {
		return
	}
	if sim == nil {
		return
	}
	size := sim.Size()
	total := size.W * size.H
	if total <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}

	clearMask(o.maskBuf)
	if o.showFrontier {
		if provider, ok := sim.(core.FrontierReporter); ok {
			paintFrontier(o.maskBuf, provider.FrontierCells(), frontierTint)
		}
	}
	if o.showChanges {
		paintChanges(o.maskBuf, size, last, birthTint, deathTint)
	}
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
