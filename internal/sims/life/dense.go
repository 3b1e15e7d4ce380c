package life

import (
	"cgol/internal/core"
)

// Dense steps the whole grid every generation using two buffers. It produces
// the same diffs as Engine and is kept as a reference implementation.
type Dense struct {
	w, h    int
	seeding Config
	cur  []uint8
	nxt  []uint8
	pop  int
}

// NewDense returns a Dense simulation with the provided dimensions.
func NewDense(w, h int) (*Dense, error) {
	t, err := core.NewTorus(w, h)
	if err != nil {
		return nil, err
	}
	cells := make([]uint8, t.Len())
	seeding := DefaultConfig()
	seeding.Width, seeding.Height = w, h
	return &Dense{w: w, h: h, seeding: seeding, cur: cells, nxt: make([]uint8, len(cells))}, nil
}

// Name returns the engine identifier.
func (l *Dense) Name() string { return "dense" }

// Size returns the grid dimensions.
func (l *Dense) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values.
func (l *Dense) Cells() []uint8 { return l.cur }

// Population returns the number of live cells.
func (l *Dense) Population() int { return l.pop }

// Reset reseeds the board from seed using the configured sampler.
func (l *Dense) Reset(seed int64) {
	l.seeding.Seed = seed
	sample := l.seeding.Sampler()
	l.pop = 0
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			l.cur[y*l.w+x] = 0
			if sample(x, y) {
				l.cur[y*l.w+x] = 1
				l.pop++
			}
		}
	}
}

// Step advances the simulation by one generation.
func (l *Dense) Step() core.Diff {
	var diff core.Diff
	w, h := l.w, l.h
	l.pop = 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(l.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			next := Rule(alive, neighbors)
			if next {
				l.nxt[idx] = 1
				l.pop++
			}
			if next != alive {
				diff = append(diff, core.Change{X: x, Y: y, Alive: next})
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	return diff
}

func init() {
	core.Register("dense", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		d, err := NewDense(c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		d.seeding = c
		d.Reset(c.Seed)
		return d, nil
	})
}
