package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"cgol/internal/core"
	"cgol/internal/sims/life"
)

func TestParseFlags(t *testing.T) {
	c := NewConfig()
	err := Parse("test", c, []string{"--engine", "dense", "-x", "40", "-y", "30", "--freq", "12.5", "--seed", "7"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Engine != "dense" || c.Width != 40 || c.Height != 30 || c.Frequency != 12.5 || c.Seed != 7 {
		t.Fatalf("unexpected config %+v", *c)
	}
	if c.Scale != 8 {
		t.Fatalf("scale default = %d, want 8", c.Scale)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgol.json")
	if err := os.WriteFile(path, []byte(`{"width": 64, "bias": 0.1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewConfig()
	if err := Parse("test", c, []string{"--load", path, "--freq", "5"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Width != 64 || c.Bias != 0.1 {
		t.Fatalf("file values not applied: %+v", *c)
	}
	if c.Frequency != 5 {
		t.Fatalf("flag should win over file, freq = %v", c.Frequency)
	}
	if c.Height != life.DefaultConfig().Height {
		t.Fatalf("absent field changed: height = %d", c.Height)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	c := NewConfig()
	if err := c.LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{width:`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.LoadConfig(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidate(t *testing.T) {
	c := NewConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	bad := *c
	bad.Engine = "nope"
	if err := bad.Validate(); !errors.Is(err, life.ErrUnknownEngine) {
		t.Fatalf("err = %v, want ErrUnknownEngine", err)
	}
	bad = *c
	bad.Width = 0
	if err := bad.Validate(); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
	bad = *c
	bad.Frequency = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("zero frequency must be rejected")
	}
}

func TestLifeConversion(t *testing.T) {
	c := NewConfig()
	c.Width, c.Height, c.Seed = 10, 20, 3
	lc := c.Life()
	if lc.Width != 10 || lc.Height != 20 || lc.Seed != 3 || lc.Frequency != c.Frequency || lc.Bias != c.Bias {
		t.Fatalf("conversion mismatch: %+v", lc)
	}
}

func TestParseWithExtraFlagsBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.json")
	if err := os.WriteFile(path, []byte(`{"width": 64, "height": 48, "sampler": "gaussian"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	steps := 10
	c := NewConfig()
	err := ParseWith("test", c, []string{"--load", path, "--width", "20", "--steps", "75"}, func(p *flaggy.Parser) {
		p.Int(&steps, "t", "steps", "Ticks per session")
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Width != 20 {
		t.Fatalf("explicit --width must win over the file, width = %d", c.Width)
	}
	if c.Height != 48 || c.Sampler != "gaussian" {
		t.Fatalf("file values not applied: %+v", *c)
	}
	if steps != 75 {
		t.Fatalf("extra flag = %d, want 75", steps)
	}
}

func TestSeedingFlags(t *testing.T) {
	c := NewConfig()
	if err := Parse("test", c, []string{"--sampler", "gaussian", "--bias", "0.1", "--pattern", "glider"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	lc := c.Life()
	if lc.Distribution != life.SamplerGaussian || lc.Bias != 0.1 || lc.Pattern != "glider" {
		t.Fatalf("seeding not carried into life.Config: %+v", lc)
	}

	for _, bad := range []func(*Config){
		func(c *Config) { c.Sampler = "uniform" },
		func(c *Config) { c.Pattern = "spaceship" },
		func(c *Config) { c.Density = 1.5 },
		func(c *Config) { c.Bias = 0.5 },
	} {
		c := NewConfig()
		bad(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("invalid seeding accepted: %+v", *c)
		}
	}
}
