package ui

import (
	"image/color"

	"cgol/internal/core"
)

var (
	frontierTint = color.RGBA{R: 64, G: 164, B: 223, A: 70}
	birthTint    = color.RGBA{R: 90, G: 220, B: 90, A: 160}
	deathTint    = color.RGBA{R: 255, G: 120, B: 40, A: 160}
)

// clearMask zeroes buf so untouched pixels stay transparent.
func clearMask(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// paintFrontier tints every packed index in cells. Out-of-range entries are skipped.
func paintFrontier(buf []byte, cells []int, tint color.RGBA) {
	n := len(buf) / 4
	for _, i := range cells {
		if i < 0 || i >= n {
			continue
		}
		putRGBA(buf, i, tint)
	}
}

// paintChanges tints births and deaths of the last step.
func paintChanges(buf []byte, size core.Size, diff core.Diff, born, died color.RGBA) {
	for _, ch := range diff {
		if ch.X < 0 || ch.X >= size.W || ch.Y < 0 || ch.Y >= size.H {
			continue
		}
		tint := died
		if ch.Alive {
			tint = born
		}
		putRGBA(buf, ch.Y*size.W+ch.X, tint)
	}
}

func putRGBA(buf []byte, i int, c color.RGBA) {
	base := i * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
