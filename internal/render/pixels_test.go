package render

import (
	"image/color"
	"slices"
	"testing"

	"cgol/internal/core"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func pixel(buf []byte, w, x, y int) color.RGBA {
	base := (y*w + x) * 4
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

func TestCanvasFullThenDiff(t *testing.T) {
	c := NewCanvas(3, 2, white, black)
	c.Full([]uint8{1, 0, 0, 0, 0, 1}, core.Size{W: 3, H: 2}, 8)
	if !c.TakeDirty() {
		t.Fatal("full paint must mark the canvas dirty")
	}
	if pixel(c.Pixels(), 3, 0, 0) != white || pixel(c.Pixels(), 3, 2, 1) != white || pixel(c.Pixels(), 3, 1, 0) != black {
		t.Fatal("full paint colors mismatch")
	}

	before := slices.Clone(c.Pixels())
	c.Render(core.Diff{{X: 0, Y: 0, Alive: false}, {X: 1, Y: 1, Alive: true}, {X: 7, Y: 0, Alive: true}}, 8)
	if pixel(c.Pixels(), 3, 0, 0) != black || pixel(c.Pixels(), 3, 1, 1) != white {
		t.Fatal("diff not painted")
	}
	// untouched cells keep their bytes
	for _, xy := range [][2]int{{1, 0}, {2, 0}, {0, 1}, {2, 1}} {
		if pixel(c.Pixels(), 3, xy[0], xy[1]) != pixel(before, 3, xy[0], xy[1]) {
			t.Fatalf("cell %v repainted without a change", xy)
		}
	}
	if !c.TakeDirty() || c.TakeDirty() {
		t.Fatal("dirty flag should be set once per change")
	}

	c.Render(nil, 8)
	if c.TakeDirty() {
		t.Fatal("empty diff must not dirty the canvas")
	}
	if c.Scale() != 8 {
		t.Fatalf("scale = %d", c.Scale())
	}
}

func TestCanvasIgnoresMismatchedGrid(t *testing.T) {
	c := NewCanvas(2, 2, white, black)
	c.Full([]uint8{1, 1, 1}, core.Size{W: 3, H: 1}, 1)
	if c.TakeDirty() {
		t.Fatal("mismatched grid must be ignored")
	}
}
