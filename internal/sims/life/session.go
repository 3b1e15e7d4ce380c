package life

import (
	"github.com/pkg/errors"

	"cgol/internal/core"
)

// ErrUnknownEngine is returned when a session names an unregistered engine.
var ErrUnknownEngine = errors.New("unknown engine")

// Session owns the current driver of a host (window, terminal). Restarting
// stops the previous driver and builds a fresh one; there is no shared game
// handle outside the session.
type Session struct {
	engine   string
	cfg      Config
	renderer Renderer
	scale    int
	driver   *Driver
}

// NewSession validates the engine name and starts the first driver.
func NewSession(engine string, cfg Config, r Renderer, scale int) (*Session, error) {
	if _, ok := core.Sims()[engine]; !ok {
		return nil, errors.Wrapf(ErrUnknownEngine, "[NewSession] %q", engine)
	}
	s := &Session{engine: engine, cfg: cfg, renderer: r, scale: scale}
	if err := s.Restart(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart stops the running driver and starts a new one seeded with seed.
// The frequency of the previous driver carries over.
func (s *Session) Restart(seed int64) error {
	cfg := s.cfg
	cfg.Seed = seed
	if s.driver != nil {
		cfg.Frequency = s.driver.Frequency()
	}

	sim, err := core.Sims()[s.engine](cfg.Map())
	if err != nil {
		return errors.Wrapf(err, "[Restart] engine %q", s.engine)
	}
	if s.driver != nil {
		s.driver.Stop()
	}
	s.cfg = cfg
	s.driver = NewDriver(sim, s.renderer, cfg.Frequency, s.scale)
	s.driver.Start()
	return nil
}

// Driver returns the current driver.
func (s *Session) Driver() *Driver { return s.driver }

// Config returns the configuration of the current driver.
func (s *Session) Config() Config { return s.cfg }

// Engine returns the registered engine name.
func (s *Session) Engine() string { return s.engine }
