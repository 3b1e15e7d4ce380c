package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Change records a single cell whose state differs from the previous generation.
type Change struct {
	X, Y  int
	Alive bool
}

// Diff is the ordered list of changes produced by one generation.
type Diff []Change

// Sim defines the minimal contract a Life engine must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() Diff
	Cells() []uint8
}

// PopulationCounter is implemented by engines that track their live cell count.
type PopulationCounter interface {
	Population() int
}

// FrontierReporter is implemented by engines that evaluate a frontier instead
// of the whole grid.
type FrontierReporter interface {
	FrontierCells() []int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available engine factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered engine names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for k := range sims {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
