package life

import (
	"slices"
	"testing"

	"cgol/internal/core"
)

func buildFrontier(t *testing.T, w, h int, cells [][2]int) []int {
	t.Helper()
	tor, err := core.NewTorus(w, h)
	if err != nil {
		t.Fatal(err)
	}
	live := make([]int, len(cells))
	for i, c := range cells {
		live[i] = tor.Index(c[0], c[1])
	}
	return slices.Clone(NewFrontier(tor).Build(live))
}

func assertUnique(t *testing.T, cells []int) {
	t.Helper()
	seen := map[int]bool{}
	for _, c := range cells {
		if seen[c] {
			t.Fatalf("frontier lists %d twice", c)
		}
		seen[c] = true
	}
}

func TestFrontierIsolatedCells(t *testing.T) {
	cells := [][2]int{{2, 2}, {10, 3}, {5, 12}}
	f := buildFrontier(t, 20, 20, cells)
	assertUnique(t, f)
	if len(f) != 9*len(cells) {
		t.Fatalf("frontier size = %d, want %d", len(f), 9*len(cells))
	}
}

func TestFrontierDeduplicatesSharedNeighbours(t *testing.T) {
	f := buildFrontier(t, 20, 20, [][2]int{{4, 4}, {5, 4}})
	assertUnique(t, f)
	// the closed neighbourhoods of two adjacent cells cover a 4×3 rectangle
	if len(f) != 12 {
		t.Fatalf("frontier size = %d, want 12", len(f))
	}

	f = buildFrontier(t, 20, 20, Blinker.At(3, 3, 20, 20))
	if len(f) != 15 {
		t.Fatalf("blinker frontier size = %d, want 15", len(f))
	}
}

func TestFrontierWrapsCorners(t *testing.T) {
	f := buildFrontier(t, 5, 5, [][2]int{{0, 0}})
	assertUnique(t, f)
	want := map[int]bool{}
	for _, c := range [][2]int{{4, 4}, {0, 4}, {1, 4}, {4, 0}, {0, 0}, {1, 0}, {4, 1}, {0, 1}, {1, 1}} {
		want[c[1]*5+c[0]] = true
	}
	if len(f) != len(want) {
		t.Fatalf("frontier = %v", f)
	}
	for _, i := range f {
		if !want[i] {
			t.Fatalf("unexpected frontier cell %d", i)
		}
	}

	// a 2×2 torus has only four cells
	if f := buildFrontier(t, 2, 2, [][2]int{{0, 0}}); len(f) != 4 {
		t.Fatalf("2x2 frontier size = %d, want 4", len(f))
	}
}

func TestFrontierEmptyAndReusable(t *testing.T) {
	tor := core.Torus{W: 6, H: 6}
	fr := NewFrontier(tor)
	if got := fr.Build(nil); len(got) != 0 {
		t.Fatalf("empty live set gave frontier %v", got)
	}

	live := []int{tor.Index(1, 1), tor.Index(4, 4)}
	first := slices.Clone(fr.Build(live))
	second := slices.Clone(fr.Build(live))
	if !slices.Equal(first, second) {
		t.Fatal("repeated builds must return the same frontier")
	}
	if first[0] != live[0] {
		t.Fatalf("frontier should start with the first live cell, got %d", first[0])
	}
}

func TestFrontierBoundedByNineK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 30, 30, 21
	e, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		k := len(e.Live())
		e.Step()
		f := e.FrontierCells()
		assertUnique(t, f)
		if len(f) > 9*k {
			t.Fatalf("frontier %d exceeds 9k=%d", len(f), 9*k)
		}
	}
}
