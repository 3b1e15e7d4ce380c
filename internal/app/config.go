package app

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"cgol/internal/core"
	"cgol/internal/sims/life"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Engine    string  `json:"engine"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Frequency float64 `json:"frequency"`
	Scale     int     `json:"scale"`
	Seed      int64   `json:"seed"`
	Bias      float64 `json:"bias"`
	Sampler   string  `json:"sampler"`
	Density   float64 `json:"density"`
	Pattern   string  `json:"pattern"`
	File      string  `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Engine:    "life",
		Width:     d.Width,
		Height:    d.Height,
		Frequency: d.Frequency,
		Scale:     8,
		Seed:      d.Seed,
		Bias:      d.Bias,
		Sampler:   d.Distribution,
		Density:   d.Density,
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.Engine, "e", "engine", "Engine to use [life|dense]")
	p.Int(&c.Width, "x", "width", "Width of the grid in cells")
	p.Int(&c.Height, "y", "height", "Height of the grid in cells")
	p.Float64(&c.Frequency, "f", "freq", "Steps per second")
	p.Int(&c.Scale, "c", "scale", "Pixel size of one cell")
	p.Int64(&c.Seed, "s", "seed", "Seed for the initial grid")
	p.Float64(&c.Bias, "b", "bias", "Sampler bias, higher means sparser")
	p.String(&c.Sampler, "", "sampler", "Initial distribution ["+strings.Join(life.SamplerNames, "|")+"]")
	p.Float64(&c.Density, "", "density", "Alive probability for the density sampler")
	p.String(&c.Pattern, "p", "pattern", "Start from a pattern instead of a random grid ["+strings.Join(life.PatternNames(), "|")+"]")
	p.String(&c.File, "l", "load", "JSON file overlaying these settings")
}

// LoadConfig overlays the JSON settings stored at path onto c. Fields absent
// from the file keep their current values.
func (c *Config) LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] read %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] decode %s", path)
	}
	return nil
}

// Validate rejects settings no engine can be built from.
func (c *Config) Validate() error {
	if _, ok := core.Sims()[c.Engine]; !ok {
		return errors.Wrapf(life.ErrUnknownEngine, "[Validate] %q (have %v)", c.Engine, core.SimNames())
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(core.ErrInvalidSize, "[Validate] %dx%d", c.Width, c.Height)
	}
	if c.Frequency <= 0 {
		return errors.Errorf("[Validate] frequency must be positive, got %v", c.Frequency)
	}
	if c.Scale <= 0 {
		return errors.Errorf("[Validate] scale must be positive, got %d", c.Scale)
	}
	if !life.ValidSampler(c.Sampler) {
		return errors.Errorf("[Validate] unknown sampler %q (have %v)", c.Sampler, life.SamplerNames)
	}
	if c.Bias <= -0.5 || c.Bias >= 0.5 {
		return errors.Errorf("[Validate] bias must lie in (-0.5, 0.5), got %v", c.Bias)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("[Validate] density must lie in [0, 1], got %v", c.Density)
	}
	if _, ok := life.Patterns[c.Pattern]; c.Pattern != "" && !ok {
		return errors.Errorf("[Validate] unknown pattern %q (have %v)", c.Pattern, life.PatternNames())
	}
	return nil
}

// Life converts the settings into an engine configuration.
func (c *Config) Life() life.Config {
	return life.Config{
		Width:     c.Width,
		Height:    c.Height,
		Frequency: c.Frequency,
		Bias:      c.Bias,
		Seed:      c.Seed,

		Distribution: c.Sampler,
		Density:      c.Density,
		Pattern:      c.Pattern,
	}
}

// Parse binds c to a fresh parser, parses args and applies the optional JSON
// overlay. Flags given explicitly are applied after the file.
func Parse(name string, c *Config, args []string) error {
	return ParseWith(name, c, args, nil)
}

// ParseWith is Parse with extra command specific flags bound by extra.
func ParseWith(name string, c *Config, args []string, extra func(*flaggy.Parser)) error {
	parse := func() error {
		p := flaggy.NewParser(name)
		p.ShowHelpOnUnexpected = true
		c.Bind(p)
		if extra != nil {
			extra(p)
		}
		return errors.Wrap(p.ParseArgs(args), "[Parse] flags")
	}
	if err := parse(); err != nil {
		return err
	}
	if c.File != "" {
		file := c.File
		if err := c.LoadConfig(file); err != nil {
			return err
		}
		// flags win over the file
		if err := parse(); err != nil {
			return err
		}
		c.File = file
	}
	return c.Validate()
}
