package core

import "github.com/pkg/errors"

// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// WrapAdd returns (c+1) mod bound for c in [0, bound).
func WrapAdd(c, bound int) int {
	c++
	if c == bound {
		return 0
	}
	return c
}

// WrapSub returns (c-1) mod bound for c in [0, bound).
func WrapSub(c, bound int) int {
	if c == 0 {
		return bound - 1
	}
	return c - 1
}

// Wrap reduces any integer coordinate into [0, bound).
func Wrap(c, bound int) int {
	return (c%bound + bound) % bound
}

// Torus addresses a W×H edge-wrapping grid through packed indices y*W+x.
type Torus struct {
	W, H int
}

// NewTorus validates the dimensions and returns the addressing helper.
func NewTorus(w, h int) (Torus, error) {
	if w < 1 || h < 1 {
		return Torus{}, errors.Wrapf(ErrInvalidSize, "[NewTorus] %dx%d", w, h)
	}
	return Torus{W: w, H: h}, nil
}

// Len returns the number of cells on the torus.
func (t Torus) Len() int { return t.W * t.H }

// Size returns the torus dimensions.
func (t Torus) Size() Size { return Size{W: t.W, H: t.H} }

// Index returns the packed index for (x, y). Coordinates must be in bounds.
func (t Torus) Index(x, y int) int { return y*t.W + x }

// Coord unpacks an index into (x, y).
func (t Torus) Coord(i int) (int, int) { return i % t.W, i / t.W }

// Contains reports whether (x, y) lies on the grid without wrapping.
func (t Torus) Contains(x, y int) bool {
	return x >= 0 && x < t.W && y >= 0 && y < t.H
}

// Neighbors writes the 8 Moore neighbours of i into dst in reading order:
// above-left, above, above-right, left, right, below-left, below, below-right.
// On grids narrower or shorter than 3 cells some entries repeat, which is the
// correct toroidal count.
func (t Torus) Neighbors(i int, dst *[8]int) {
	x, y := i%t.W, i/t.W
	left := WrapSub(x, t.W)
	right := WrapAdd(x, t.W)
	above := WrapSub(y, t.H) * t.W
	row := y * t.W
	below := WrapAdd(y, t.H) * t.W

	dst[0] = above + left
	dst[1] = above + x
	dst[2] = above + right
	dst[3] = row + left
	dst[4] = row + right
	dst[5] = below + left
	dst[6] = below + x
	dst[7] = below + right
}
