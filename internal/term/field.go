package term

import (
	"bytes"

	"github.com/logrusorgru/aurora"

	"cgol/internal/core"
)

var (
	// LiveFiller is drawn for a live cell.
	LiveFiller = aurora.Green("█").BgBrightGreen().String()
	// DeadFiller is drawn for a dead cell.
	DeadFiller = "░"
)

// Field mirrors the grid for the terminal. It is the driver's renderer: the
// first paint copies the whole grid and later steps only flip changed cells.
type Field struct {
	w, h  int
	cells []bool
	live  string
	dead  string
	dirty bool
}

// NewField allocates a field of w*h cells drawn with the given fillers.
func NewField(w, h int, live, dead string) *Field {
	return &Field{w: w, h: h, cells: make([]bool, w*h), live: live, dead: dead}
}

// Full copies every cell.
func (f *Field) Full(cells []uint8, size core.Size, _ int) {
	if size.W != f.w || size.H != f.h || len(cells) != len(f.cells) {
		return
	}
	for i, c := range cells {
		f.cells[i] = c != 0
	}
	f.dirty = true
}

// Render flips the cells named by diff.
func (f *Field) Render(diff core.Diff, _ int) {
	for _, ch := range diff {
		if ch.X < 0 || ch.X >= f.w || ch.Y < 0 || ch.Y >= f.h {
			continue
		}
		f.cells[ch.Y*f.w+ch.X] = ch.Alive
	}
	if len(diff) > 0 {
		f.dirty = true
	}
}

// TakeDirty reports whether the field changed since the last call.
func (f *Field) TakeDirty() bool {
	d := f.dirty
	f.dirty = false
	return d
}

// Text renders at most maxW columns and maxH rows. When the grid does not fit
// the last visible row is replaced by a warning.
func (f *Field) Text(maxW, maxH int) string {
	crop := f.w > maxW || f.h > maxH
	var b bytes.Buffer
	for y := 0; y < f.h && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		row := f.cells[y*f.w : (y+1)*f.w]
		for x, alive := range row {
			if x >= maxW {
				break
			}
			if alive {
				b.WriteString(f.live)
			} else {
				b.WriteString(f.dead)
			}
		}
	}
	return b.String()
}
