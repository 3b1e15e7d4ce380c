// Package bench runs headless sessions of every engine side by side and checks
// that they agree cell for cell.
package bench

import (
	"context"
	"hash/fnv"
	"runtime"
	"sort"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"cgol/internal/core"
	"cgol/internal/sims/life"
)

// Options describes one sweep.
type Options struct {
	Engines []string
	Seeds   []int64
	Steps   int
	Workers int
	Config  life.Config
}

// Result is the outcome of one engine on one seed.
type Result struct {
	Engine      string
	Seed        int64
	Generations int
	Population  int
	Changes     int
	Hash        uint64
	Elapsed     time.Duration
}

// Agreement groups the results of one seed.
type Agreement struct {
	Seed    int64
	Results []Result
	Agree   bool
}

// changeCounter is the renderer of a headless session.
type changeCounter struct{ n int }

func (c *changeCounter) Render(diff core.Diff, _ int) { c.n += len(diff) }

// Run executes every engine/seed pair on its own session. Sessions share
// nothing so they run in parallel, bounded by Workers.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Steps < 0 {
		return nil, errors.Errorf("[Run] negative step count %d", opts.Steps)
	}
	for _, name := range opts.Engines {
		if _, ok := core.Sims()[name]; !ok {
			return nil, errors.Wrapf(life.ErrUnknownEngine, "[Run] %q", name)
		}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(opts.Engines)*len(opts.Seeds))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for si, seed := range opts.Seeds {
		for ei, name := range opts.Engines {
			slot := si*len(opts.Engines) + ei
			seed, name := seed, name
			grp.Go(func() error {
				res, err := runOne(ctx, name, seed, opts)
				if err != nil {
					return err
				}
				results[slot] = res
				return nil
			})
		}
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runOne drives a session with a synthetic clock that advances one period per
// tick, so every tick after the first steps exactly once.
func runOne(ctx context.Context, engine string, seed int64, opts Options) (Result, error) {
	cfg := opts.Config
	cfg.Seed = seed
	counter := &changeCounter{}
	session, err := life.NewSession(engine, cfg, counter, 1)
	if err != nil {
		return Result{}, err
	}
	d := session.Driver()
	period := time.Duration(float64(time.Second) / d.Frequency())

	start := time.Now()
	for k := 0; k <= opts.Steps; k++ {
		if k%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		d.Tick(time.Duration(k) * period)
	}
	elapsed := time.Since(start)
	d.Stop()

	return Result{
		Engine:      engine,
		Seed:        seed,
		Generations: d.Stats().Generation,
		Population:  d.Stats().Population,
		Changes:     counter.n,
		Hash:        hashCells(d.Sim().Cells()),
		Elapsed:     elapsed,
	}, nil
}

func hashCells(cells []uint8) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(cells)
	return h.Sum64()
}

// Compare groups results by seed and reports whether all engines reached the
// same grid.
func Compare(results []Result) []Agreement {
	bySeed := make(map[int64][]Result)
	for _, r := range results {
		bySeed[r.Seed] = append(bySeed[r.Seed], r)
	}
	out := make([]Agreement, 0, len(bySeed))
	for seed, rs := range bySeed {
		agree := true
		for _, r := range rs[1:] {
			if r.Hash != rs[0].Hash || r.Generations != rs[0].Generations {
				agree = false
			}
		}
		out = append(out, Agreement{Seed: seed, Results: rs, Agree: agree})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seed < out[j].Seed })
	return out
}
