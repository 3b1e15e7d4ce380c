package life

import (
	"github.com/pkg/errors"

	"cgol/internal/core"
)

// ErrOutOfBounds is returned when a seed or diff coordinate lies off the grid.
var ErrOutOfBounds = errors.New("coordinate outside the grid")

// ErrLiveSetMismatch is returned when Apply is given a live set that does not
// match the grid after the diff.
var ErrLiveSetMismatch = errors.New("live set does not match the grid")

// Rule applies Conway's rule: birth on 3, survival on 2 or 3.
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Engine steps Conway's Game of Life on a torus, evaluating only the live
// cells and their neighbours each generation.
type Engine struct {
	grid     *core.Grid
	live     []int
	frontier *Frontier
	nbr      [8]int
	gen      int
	seeding  Config
}

// NewEngine builds a W×H engine whose initial population is drawn from sample.
func NewEngine(w, h int, sample core.Sampler) (*Engine, error) {
	grid, err := core.NewGrid(w, h)
	if err != nil {
		return nil, errors.Wrap(err, "[NewEngine]")
	}
	if sample == nil {
		sample = core.Dead
	}
	grid.Fill(sample)
	return newEngine(grid), nil
}

// NewEngineFromCells builds a W×H engine with exactly the listed cells alive.
// Duplicate coordinates are allowed; off-grid ones are rejected.
func NewEngineFromCells(w, h int, live [][2]int) (*Engine, error) {
	grid, err := core.NewGrid(w, h)
	if err != nil {
		return nil, errors.Wrap(err, "[NewEngineFromCells]")
	}
	for _, c := range live {
		if !grid.Contains(c[0], c[1]) {
			return nil, errors.Wrapf(ErrOutOfBounds, "[NewEngineFromCells] (%d,%d) on %dx%d", c[0], c[1], w, h)
		}
		grid.Set(c[0], c[1], true)
	}
	return newEngine(grid), nil
}

// NewWithConfig builds an engine seeded from cfg.Seed and cfg.Bias.
func NewWithConfig(cfg Config) (*Engine, error) {
	e, err := NewEngine(cfg.Width, cfg.Height, cfg.Sampler())
	if err != nil {
		return nil, err
	}
	e.seeding = cfg
	return e, nil
}

func newEngine(grid *core.Grid) *Engine {
	seeding := DefaultConfig()
	seeding.Width, seeding.Height = grid.W, grid.H
	return &Engine{
		grid:     grid,
		live:     grid.Live(),
		frontier: NewFrontier(grid.Torus),
		seeding:  seeding,
	}
}

// Name returns the engine identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Cells exposes the current grid values.
func (e *Engine) Cells() []uint8 { return e.grid.Cells() }

// Live returns the packed indices of the live cells.
func (e *Engine) Live() []int { return e.live }

// Alive reports the state of (x, y).
func (e *Engine) Alive(x, y int) bool { return e.grid.Get(x, y) }

// Population returns the number of live cells.
func (e *Engine) Population() int { return len(e.live) }

// Generation returns how many steps have been applied.
func (e *Engine) Generation() int { return e.gen }

// FrontierCells returns the frontier evaluated by the last step.
func (e *Engine) FrontierCells() []int { return e.frontier.Cells() }

// Reset reseeds the grid from seed using the engine's configured sampler.
// Engines built without a Config use the default biased sampler.
func (e *Engine) Reset(seed int64) {
	e.seeding.Seed = seed
	e.grid.Fill(e.seeding.Sampler())
	e.live = e.grid.Live()
	e.frontier.Build(nil)
	e.gen = 0
}

// Evaluate computes the next state of every frontier cell from the current
// grid without modifying it. It returns the changed cells and every cell that
// is alive in the next generation.
func (e *Engine) Evaluate(frontier []int) (core.Diff, []int) {
	var diff core.Diff
	living := make([]int, 0, len(e.live))
	for _, i := range frontier {
		alive := e.grid.Alive(i)
		next := Rule(alive, e.grid.LiveNeighbors(i, &e.nbr))
		if next {
			living = append(living, i)
		}
		if next != alive {
			x, y := e.grid.Coord(i)
			diff = append(diff, core.Change{X: x, Y: y, Alive: next})
		}
	}
	return diff, living
}

// Apply writes diff to the grid and replaces the live set with living. living
// must list exactly the cells alive once diff is applied, each once. Every
// argument is validated first so a rejected call leaves the engine untouched.
func (e *Engine) Apply(diff core.Diff, living []int) error {
	n := e.grid.Len()
	after := make(map[int]bool, len(diff))
	for _, c := range diff {
		if !e.grid.Contains(c.X, c.Y) {
			return errors.Wrapf(ErrOutOfBounds, "[Apply] diff (%d,%d)", c.X, c.Y)
		}
		after[e.grid.Index(c.X, c.Y)] = c.Alive
	}

	seen := make(map[int]bool, len(living))
	for _, i := range living {
		if i < 0 || i >= n {
			return errors.Wrapf(ErrOutOfBounds, "[Apply] live index %d", i)
		}
		if seen[i] {
			return errors.Wrapf(ErrLiveSetMismatch, "[Apply] live index %d listed twice", i)
		}
		seen[i] = true
		alive, changed := after[i]
		if !changed {
			alive = e.grid.Alive(i)
		}
		if !alive {
			return errors.Wrapf(ErrLiveSetMismatch, "[Apply] live index %d is dead after the diff", i)
		}
	}

	// every listed cell is alive and distinct, so matching the count makes it the whole set
	pop := len(e.live)
	for i, alive := range after {
		switch was := e.grid.Alive(i); {
		case alive && !was:
			pop++
		case !alive && was:
			pop--
		}
	}
	if len(living) != pop {
		return errors.Wrapf(ErrLiveSetMismatch, "[Apply] %d live cells listed, grid will hold %d", len(living), pop)
	}

	e.apply(diff, living)
	return nil
}

// Step advances the simulation by one generation and returns the changes.
func (e *Engine) Step() core.Diff {
	diff, living := e.Evaluate(e.frontier.Build(e.live))
	e.apply(diff, living)
	return diff
}

func (e *Engine) apply(diff core.Diff, living []int) {
	for _, c := range diff {
		e.grid.Set(c.X, c.Y, c.Alive)
	}
	e.live = living
	e.gen++
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
