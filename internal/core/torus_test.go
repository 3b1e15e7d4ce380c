package core

import (
	"testing"

	"github.com/pkg/errors"
)

func TestWrapMatchesModulo(t *testing.T) {
	for bound := 1; bound <= 9; bound++ {
		for c := 0; c < bound; c++ {
			if got, want := WrapAdd(c, bound), (c+1)%bound; got != want {
				t.Fatalf("WrapAdd(%d, %d) = %d, want %d", c, bound, got, want)
			}
			if got, want := WrapSub(c, bound), ((c-1)%bound+bound)%bound; got != want {
				t.Fatalf("WrapSub(%d, %d) = %d, want %d", c, bound, got, want)
			}
		}
	}
	if WrapSub(0, 3) != 2 {
		t.Fatal("WrapSub(0, 3) must wrap to 2")
	}
	if WrapAdd(2, 3) != 0 {
		t.Fatal("WrapAdd(2, 3) must wrap to 0")
	}
	if Wrap(-4, 3) != 2 || Wrap(7, 3) != 1 {
		t.Fatalf("Wrap mismatch: %d %d", Wrap(-4, 3), Wrap(7, 3))
	}
}

func TestNeighborsWrapBothAxes(t *testing.T) {
	tor, err := NewTorus(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	var nbr [8]int
	tor.Neighbors(tor.Index(0, 0), &nbr)

	x, y := tor.Coord(nbr[0])
	if x != 2 || y != 2 {
		t.Fatalf("above-left of (0,0) = (%d,%d), want (2,2)", x, y)
	}

	expects := map[[2]int]bool{
		{2, 2}: true, {0, 2}: true, {1, 2}: true,
		{2, 0}: true, {1, 0}: true,
		{2, 1}: true, {0, 1}: true, {1, 1}: true,
	}
	for _, n := range nbr {
		x, y := tor.Coord(n)
		if !expects[[2]int{x, y}] {
			t.Fatalf("unexpected neighbour (%d,%d)", x, y)
		}
		delete(expects, [2]int{x, y})
	}
	if len(expects) != 0 {
		t.Fatalf("missing neighbours: %v", expects)
	}
}

func TestNewTorusRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 3}} {
		_, err := NewTorus(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewTorus(%d, %d) err = %v, want ErrInvalidSize", dims[0], dims[1], err)
		}
	}
	if _, err := NewGrid(0, 0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("NewGrid(0, 0) err = %v", err)
	}
}

func TestGridLiveNeighborsSingleColumn(t *testing.T) {
	g, err := NewGrid(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, true)
	var scratch [8]int
	// On a width-1 torus the left, right and own column coincide, so the
	// cell above is counted three times.
	if n := g.LiveNeighbors(g.Index(0, 1), &scratch); n != 3 {
		t.Fatalf("neighbours = %d, want 3", n)
	}
	// The cell itself is counted twice via left and right.
	if n := g.LiveNeighbors(g.Index(0, 0), &scratch); n != 2 {
		t.Fatalf("self-adjacent neighbours = %d, want 2", n)
	}
}
