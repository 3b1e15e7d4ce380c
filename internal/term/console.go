package term

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"cgol/internal/sims/life"
)

// pollInterval bounds how often the driver is offered a tick. The driver's
// own pacer decides whether a step is due.
const pollInterval = 10 * time.Millisecond

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

// Console is an interactive terminal host for a Life session. Every driver
// call happens on the gocui main loop goroutine.
type Console struct {
	session *life.Session
	field   *Field
	g       *gocui.Gui
	keys    []keyBinding
	start   time.Time
	seed    int64
}

var stateDescr = map[life.State]string{
	life.Paused:  aurora.Colorize("paused", aurora.BlueFg).String(),
	life.Running: aurora.Colorize("running", aurora.CyanFg).String(),
	life.Stopped: aurora.Colorize("stopped", aurora.RedFg).String(),
}

// NewConsole builds the session on a terminal field and prepares the gocui UI.
func NewConsole(engine string, cfg life.Config) (*Console, error) {
	field := NewField(cfg.Width, cfg.Height, LiveFiller, DeadFiller)
	session, err := life.NewSession(engine, cfg, field, 1)
	if err != nil {
		return nil, err
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsole] terminal")
	}
	c := &Console{session: session, field: field, g: g, seed: cfg.Seed}
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit},
		{'q', "Q", "Exit", c.cmdQuit},
		{gocui.KeySpace, "SPACE", "Pause/Play", c.cmdToggle},
		{'n', "N", "Next step", c.cmdStep},
		{'r', "R", "Restart", c.cmdRestart},
		{'s', "S", "New seed", c.cmdReseed},
		{'+', "+", "Faster", c.cmdFaster},
		{'-', "-", "Slower", c.cmdSlower},
	}
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			g.Close()
			return nil, errors.Wrapf(err, "[NewConsole] bind %s", kb.name)
		}
	}
	return c, nil
}

// Run blocks until the user quits or ctx is cancelled. The UI loop and the
// ticker run in one errgroup; whichever ends first stops the other.
func (c *Console) Run(ctx context.Context) error {
	defer c.g.Close()
	c.start = time.Now()

	grp, ctx := errgroup.WithContext(ctx)
	loopDone := make(chan struct{})
	grp.Go(func() error {
		defer close(loopDone)
		if err := c.g.MainLoop(); err != nil && err != gocui.ErrQuit {
			return errors.Wrap(err, "[Run] main loop")
		}
		return nil
	})
	grp.Go(func() error {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-loopDone:
				return nil
			case <-ctx.Done():
				c.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
				return nil
			case <-ticker.C:
				c.g.Update(c.tick)
			}
		}
	})
	return grp.Wait()
}

func (c *Console) tick(*gocui.Gui) error {
	c.session.Driver().Tick(time.Since(c.start))
	return nil
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	const leftColumnWidth = 30
	const minWindowHeight = 16

	if maxY < minWindowHeight {
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		_ = g.DeleteView("help")
		return c.header(g, maxY, "Terminal height too small")
	}
	if err := c.header(g, 2, "Conway's Game of Life on a torus, "+c.session.Engine()+" engine"); err != nil {
		return err
	}

	if v, err := g.SetView("status", 0, 3, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	c.renderStatus(g)

	v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-4)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Field"
		c.field.dirty = true
	}
	if c.field.TakeDirty() {
		v.Clear()
		w, h := v.Size()
		_, _ = fmt.Fprint(v, c.field.Text(w, h))
	}

	if v, err := g.SetView("help", -1, maxY-4, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.Wrap = true
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		for i, k := range c.keys {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	return nil
}

func (c *Console) renderStatus(g *gocui.Gui) {
	v, err := g.View("status")
	if err != nil {
		return
	}
	v.Clear()
	d := c.session.Driver()
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", stateDescr[d.State()]))
	for _, group := range d.Parameters().Groups {
		_, _ = fmt.Fprintln(v, " "+aurora.Bold(group.Name).String())
		for _, p := range group.Params {
			if p.Key == "state" {
				continue
			}
			_, _ = fmt.Fprintln(v, renderProp(p.Label, "%s", p.Value))
		}
	}
}

func renderProp(name string, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+format, values...)
}

func (c *Console) header(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView("header", -1, -1, maxX+1, height)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	pad := 0
	if maxX > len(text) {
		pad = (maxX - len(text)) / 2
	}
	_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", pad)+text)
	return nil
}

func (c *Console) cmdQuit() error {
	c.session.Driver().Stop()
	return gocui.ErrQuit
}

func (c *Console) cmdToggle() error {
	c.session.Driver().Toggle()
	return nil
}

func (c *Console) cmdStep() error {
	c.session.Driver().Step()
	return nil
}

func (c *Console) cmdRestart() error {
	return c.restart(c.seed)
}

func (c *Console) cmdReseed() error {
	return c.restart(time.Now().UnixNano())
}

func (c *Console) restart(seed int64) error {
	if err := c.session.Restart(seed); err != nil {
		return err
	}
	c.seed = seed
	return nil
}

func (c *Console) cmdFaster() error {
	return c.adjustFrequency(1)
}

func (c *Console) cmdSlower() error {
	return c.adjustFrequency(-1)
}

func (c *Console) adjustFrequency(direction float64) error {
	d := c.session.Driver()
	for _, ctrl := range d.ParameterControls() {
		if ctrl.Key != "freq" {
			continue
		}
		v, _ := d.FloatParameter(ctrl.Key)
		d.SetFloatParameter(ctrl.Key, ctrl.Clamp(v+direction*ctrl.Step))
	}
	return nil
}
