package life

import "cgol/internal/core"

// Pattern is a set of live cells relative to its top-left corner.
type Pattern [][2]int

var (
	// Block is a 2×2 still life.
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	// Blinker is a horizontal period-2 oscillator.
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}
	// Glider travels one cell diagonally down-right every 4 generations.
	Glider = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
)

// At returns the pattern translated to (x, y) and wrapped onto a w×h torus.
func (p Pattern) At(x, y, w, h int) [][2]int {
	cells := make([][2]int, len(p))
	for i, c := range p {
		cells[i] = [2]int{core.Wrap(x+c[0], w), core.Wrap(y+c[1], h)}
	}
	return cells
}

// Patterns maps the names accepted by Config.Pattern.
var Patterns = map[string]Pattern{
	"block":   Block,
	"blinker": Blinker,
	"glider":  Glider,
}

// Sampler marks the pattern's cells, placed at the origin of a w×h torus.
func (p Pattern) Sampler(w, h int) core.Sampler {
	set := make(map[[2]int]bool, len(p))
	for _, c := range p.At(0, 0, w, h) {
		set[c] = true
	}
	return func(x, y int) bool { return set[[2]int{x, y}] }
}
