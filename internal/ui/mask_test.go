package ui

import (
	"image/color"
	"testing"

	"cgol/internal/core"
)

func at(buf []byte, i int) color.RGBA {
	return color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
}

func TestPaintFrontierSkipsOutOfRange(t *testing.T) {
	buf := make([]byte, 4*4)
	paintFrontier(buf, []int{1, 3, -1, 9}, frontierTint)
	if at(buf, 1) != frontierTint || at(buf, 3) != frontierTint {
		t.Fatal("frontier cells not tinted")
	}
	if at(buf, 0) != (color.RGBA{}) || at(buf, 2) != (color.RGBA{}) {
		t.Fatal("cells outside the frontier must stay transparent")
	}
}

func TestPaintChangesColorsBirthsAndDeaths(t *testing.T) {
	size := core.Size{W: 3, H: 2}
	buf := make([]byte, 4*6)
	paintChanges(buf, size, core.Diff{{X: 2, Y: 1, Alive: true}, {X: 0, Y: 0}, {X: 5, Y: 0, Alive: true}}, birthTint, deathTint)
	if at(buf, 5) != birthTint {
		t.Fatalf("birth = %v", at(buf, 5))
	}
	if at(buf, 0) != deathTint {
		t.Fatalf("death = %v", at(buf, 0))
	}
	clearMask(buf)
	for i := 0; i < 6; i++ {
		if at(buf, i) != (color.RGBA{}) {
			t.Fatalf("pixel %d not cleared", i)
		}
	}
}
