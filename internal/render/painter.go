//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DiffPainter keeps an ebiten image in sync with a Canvas and draws it scaled.
type DiffPainter struct {
	*Canvas
	img *ebiten.Image
}

// NewDiffPainter allocates a painter for a grid of size w*h.
func NewDiffPainter(w, h int, on, off color.Color) *DiffPainter {
	return &DiffPainter{Canvas: NewCanvas(w, h, on, off), img: ebiten.NewImage(w, h)}
}

// Draw uploads pending changes and draws the grid onto dst.
func (p *DiffPainter) Draw(dst *ebiten.Image) {
	if p.TakeDirty() {
		p.img.WritePixels(p.Pixels())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.Scale()), float64(p.Scale()))
	dst.DrawImage(p.img, op)
}
