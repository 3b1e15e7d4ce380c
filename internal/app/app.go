//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"cgol/internal/render"
	"cgol/internal/sims/life"
	"cgol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a Life session to the ebiten.Game interface.
type Game struct {
	session *life.Session
	painter *render.DiffPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	start time.Time
	seed  int64
}

// New constructs a Game and starts its first session.
func New(cfg *Config) (*Game, error) {
	painter := render.NewDiffPainter(cfg.Width, cfg.Height, color.White, color.Black)
	session, err := life.NewSession(cfg.Engine, cfg.Life(), painter, cfg.Scale)
	if err != nil {
		return nil, err
	}
	return &Game{
		session: session,
		painter: painter,
		overlay: ui.NewOverlay(),
		hud:     ui.NewHUD(hudWidth),
		start:   time.Now(),
		seed:    cfg.Seed,
	}, nil
}

// Reset restarts the session with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.session.Restart(seed); err != nil {
		log.Printf("restart failed: %v", err)
		return
	}
	log.Printf("restarted %s session with seed %d", g.session.Engine(), seed)
	g.seed = seed
}

// Update handles per-frame input and lets the driver decide whether a step is due.
func (g *Game) Update() error {
	d := g.session.Driver()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		d.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		d.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		d.Play()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		d.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	d = g.session.Driver()
	g.hud.Update(d, g.viewWidth())

	d.Tick(time.Since(g.start))
	return nil
}

// Draw renders the grid, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	d := g.session.Driver()
	g.painter.Draw(screen)
	if g.overlay != nil {
		g.overlay.Draw(screen, d.Sim(), d.LastDiff(), d.Scale())
	}
	size := d.Sim().Size()
	g.hud.Draw(screen, g.viewWidth(), size.H*d.Scale())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	d := g.session.Driver()
	return g.viewWidth() + g.hud.Width(), d.Sim().Size().H * d.Scale()
}

func (g *Game) viewWidth() int {
	d := g.session.Driver()
	return d.Sim().Size().W * d.Scale()
}
