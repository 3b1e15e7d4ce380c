package term

import (
	"strings"
	"testing"

	"cgol/internal/core"
	"cgol/internal/sims/life"
)

func TestFieldFullAndDiff(t *testing.T) {
	f := NewField(3, 2, "#", ".")
	f.Full([]uint8{1, 0, 0, 0, 1, 0}, core.Size{W: 3, H: 2}, 1)
	if !f.TakeDirty() {
		t.Fatal("full paint should dirty the field")
	}
	if got := f.Text(3, 2); got != "#..\n.#." {
		t.Fatalf("text = %q", got)
	}
	f.Render(core.Diff{{X: 0, Y: 0}, {X: 2, Y: 1, Alive: true}, {X: 9, Y: 9, Alive: true}}, 1)
	if got := f.Text(3, 2); got != "...\n.##" {
		t.Fatalf("text after diff = %q", got)
	}
	f.TakeDirty()
	f.Render(nil, 1)
	if f.TakeDirty() {
		t.Fatal("empty diff must not dirty the field")
	}
}

func TestFieldCropsToView(t *testing.T) {
	f := NewField(4, 4, "#", ".")
	got := strings.Split(f.Text(2, 3), "\n")
	if len(got) != 3 {
		t.Fatalf("rows = %d, want 3", len(got))
	}
	if got[0] != ".." {
		t.Fatalf("row 0 = %q", got[0])
	}
	if !strings.Contains(got[2], "larger than the viewing area") {
		t.Fatalf("missing crop warning: %q", got[2])
	}
}

// The field tracks an engine exactly when driven by diffs alone.
func TestFieldFollowsDriver(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 12, 9
	e, err := life.NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	f := NewField(12, 9, "#", ".")
	d := life.NewDriver(e, f, 10, 1)
	d.Start()
	for i := 0; i < 20; i++ {
		d.Step()
	}
	want := NewField(12, 9, "#", ".")
	want.Full(e.Cells(), e.Size(), 1)
	if f.Text(12, 9) != want.Text(12, 9) {
		t.Fatal("field diverged from the engine")
	}
}
