package core

import (
	"math"
	"slices"
	"testing"
)

func TestFillDeterministic(t *testing.T) {
	a, _ := NewGrid(32, 24)
	b, _ := NewGrid(32, 24)
	a.Fill(BiasedSampler(NewRNG(7).Source(), DefaultBias))
	b.Fill(BiasedSampler(NewRNG(7).Source(), DefaultBias))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed must produce the same population")
	}

	b.Fill(BiasedSampler(NewRNG(8).Source(), DefaultBias))
	if slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("different seeds produced identical populations")
	}
}

func TestSamplerDensities(t *testing.T) {
	const n = 20000
	count := func(s Sampler) int {
		alive := 0
		for i := 0; i < n; i++ {
			if s(i, 0) {
				alive++
			}
		}
		return alive
	}

	biased := float64(count(BiasedSampler(NewRNG(1).Source(), DefaultBias))) / n
	if biased < 0.27 || biased > 0.33 {
		t.Fatalf("biased density = %.3f, want ~0.30", biased)
	}
	unbiased := float64(count(BiasedSampler(NewRNG(1).Source(), 0))) / n
	if unbiased < 0.47 || unbiased > 0.53 {
		t.Fatalf("unbiased density = %.3f, want ~0.50", unbiased)
	}
	dense := float64(count(DensitySampler(NewRNG(1).Source(), 0.15))) / n
	if dense < 0.13 || dense > 0.17 {
		t.Fatalf("density sampler = %.3f, want ~0.15", dense)
	}
	// normal draw folded onto [0,1): alive when n >= 7*bias, so 1-Phi(0.7) for bias 0.1
	gauss := float64(count(GaussianSampler(NewRNG(1).Source(), 0.1))) / n
	if gauss < 0.22 || gauss > 0.265 {
		t.Fatalf("gaussian density = %.3f, want ~0.242", gauss)
	}
	sparse := float64(count(GaussianSampler(NewRNG(1).Source(), DefaultBias))) / n
	if sparse >= gauss || sparse < 0.06 || sparse > 0.10 {
		t.Fatalf("gaussian density at default bias = %.3f, want ~0.081", sparse)
	}
	if count(Dead) != 0 {
		t.Fatal("Dead sampler produced live cells")
	}
}

func TestGridLiveMatchesCells(t *testing.T) {
	g, _ := NewGrid(5, 4)
	g.Set(0, 0, true)
	g.Set(4, 3, true)
	g.Set(2, 1, true)
	if got, want := g.Live(), []int{0, 7, 19}; !slices.Equal(got, want) {
		t.Fatalf("Live() = %v, want %v", got, want)
	}
	g.Fill(Dead)
	if len(g.Live()) != 0 {
		t.Fatal("Fill(Dead) left live cells")
	}
}

func TestStatsMovingAverage(t *testing.T) {
	var s Stats
	s.Update(1, 100, 5, 40)
	if s.AveragePopulation != 100 {
		t.Fatalf("first average = %v", s.AveragePopulation)
	}
	s.Update(2, 200, 5, 40)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("second average = %v, want 110", s.AveragePopulation)
	}
	if s.Generation != 2 || s.Population != 200 {
		t.Fatalf("stats not recorded: %+v", s)
	}
}
