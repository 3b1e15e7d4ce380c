package life

import (
	"sort"
	"strconv"

	"cgol/internal/core"
)

// Initial population distributions.
const (
	SamplerBiased   = "biased"
	SamplerDensity  = "density"
	SamplerGaussian = "gaussian"
)

// SamplerNames lists the accepted Distribution values.
var SamplerNames = []string{SamplerBiased, SamplerDensity, SamplerGaussian}

// Config holds the construction parameters of a Life session.
type Config struct {
	Width     int
	Height    int
	Frequency float64
	Bias      float64
	Seed      int64
	// Distribution selects the random sampler; Bias applies to biased and
	// gaussian, Density to density.
	Distribution string
	Density      float64
	// Pattern, when set, replaces the random population with a named pattern
	// placed at the origin.
	Pattern string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     160,
		Height:    100,
		Frequency: core.DefaultFrequency,
		Bias:      core.DefaultBias,
		Seed:      42,

		Distribution: SamplerBiased,
		Density:      0.3,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["freq"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Frequency = parsed
		}
	}
	if v, ok := cfg["bias"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > -0.5 && parsed < 0.5 {
			c.Bias = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["sampler"]; ok && ValidSampler(v) {
		c.Distribution = v
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && (v == "" || Patterns[v] != nil) {
		c.Pattern = v
	}
	return c
}

// Map renders the config back into the registry's key/value form.
func (c Config) Map() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"freq": strconv.FormatFloat(c.Frequency, 'g', -1, 64),
		"bias": strconv.FormatFloat(c.Bias, 'g', -1, 64),
		"seed": strconv.FormatInt(c.Seed, 10),

		"sampler": c.Distribution,
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
		"pattern": c.Pattern,
	}
}

// Sampler returns the seeded population sampler described by the config.
func (c Config) Sampler() core.Sampler {
	if p, ok := Patterns[c.Pattern]; ok {
		return p.Sampler(c.Width, c.Height)
	}
	rng := core.NewRNG(c.Seed).Source()
	switch c.Distribution {
	case SamplerDensity:
		return core.DensitySampler(rng, c.Density)
	case SamplerGaussian:
		return core.GaussianSampler(rng, c.Bias)
	default:
		return core.BiasedSampler(rng, c.Bias)
	}
}

// ValidSampler reports whether name is a known distribution.
func ValidSampler(name string) bool {
	for _, n := range SamplerNames {
		if n == name {
			return true
		}
	}
	return false
}

// PatternNames returns the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
