package life

import "cgol/internal/core"

// Frontier derives the cells that need rule evaluation: every live cell and its
// eight toroidal neighbours, each listed once.
type Frontier struct {
	torus core.Torus
	mark  []bool
	cells []int
	nbr   [8]int
}

// NewFrontier allocates the dedup bitmap for t.
func NewFrontier(t core.Torus) *Frontier {
	return &Frontier{torus: t, mark: make([]bool, t.Len())}
}

// Build returns the deduplicated closed Moore neighbourhood of live. Cells are
// emitted in first-seen order. The slice is reused by the next Build.
func (f *Frontier) Build(live []int) []int {
	f.cells = f.cells[:0]
	for _, i := range live {
		f.add(i)
		f.torus.Neighbors(i, &f.nbr)
		for _, n := range f.nbr {
			f.add(n)
		}
	}
	// clear only what was marked so a build stays proportional to the frontier
	for _, i := range f.cells {
		f.mark[i] = false
	}
	return f.cells
}

// Cells returns the result of the last Build.
func (f *Frontier) Cells() []int { return f.cells }

func (f *Frontier) add(i int) {
	if f.mark[i] {
		return
	}
	f.mark[i] = true
	f.cells = append(f.cells, i)
}
