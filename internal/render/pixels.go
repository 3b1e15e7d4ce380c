package render

import (
	"image/color"

	"cgol/internal/core"
)

// Canvas keeps an RGBA pixel buffer with one pixel per cell. Full paints the
// whole grid; Render rewrites only the pixels named by a diff.
type Canvas struct {
	w, h  int
	buf   []byte
	on    color.Color
	off   color.Color
	scale int
	dirty bool
}

// NewCanvas allocates a canvas for a w×h grid.
func NewCanvas(w, h int, on, off color.Color) *Canvas {
	return &Canvas{w: w, h: h, buf: make([]byte, 4*w*h), on: on, off: off, scale: 1}
}

// Full repaints every cell.
func (c *Canvas) Full(cells []uint8, size core.Size, scale int) {
	if size.W != c.w || size.H != c.h || len(cells) != c.w*c.h {
		return
	}
	fillBinaryRGBA(c.buf, cells, c.on, c.off)
	c.scale = scale
	c.dirty = true
}

// Render repaints the cells changed by one step.
func (c *Canvas) Render(diff core.Diff, scale int) {
	c.scale = scale
	if len(diff) == 0 {
		return
	}
	paintDiff(c.buf, c.w, c.h, diff, c.on, c.off)
	c.dirty = true
}

// Pixels exposes the RGBA buffer.
func (c *Canvas) Pixels() []byte { return c.buf }

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Scale returns the cell size last supplied by the driver.
func (c *Canvas) Scale() int { return c.scale }

// TakeDirty reports whether the buffer changed since the last call.
func (c *Canvas) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// paintDiff writes the new color of each changed cell; off-grid entries are skipped.
func paintDiff(buf []byte, w, h int, diff core.Diff, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for _, ch := range diff {
		if ch.X < 0 || ch.X >= w || ch.Y < 0 || ch.Y >= h {
			continue
		}
		base := (ch.Y*w + ch.X) * 4
		if ch.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
