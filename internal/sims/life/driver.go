package life

import (
	"strconv"
	"time"

	"cgol/internal/core"
)

// State is the running mode of a Driver.
type State int

const (
	Stopped State = iota
	Paused
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Paused:
		return "paused"
	case Running:
		return "running"
	}
	return "unknown"
}

// Renderer draws the cells changed by one step. scale is the pixel size of a cell.
type Renderer interface {
	Render(diff core.Diff, scale int)
}

// FullRenderer can also paint a whole grid; drivers use it once on construction.
type FullRenderer interface {
	Renderer
	Full(cells []uint8, size core.Size, scale int)
}

// Driver runs one simulation session: it gates steps on the pacer, tracks the
// Stopped/Paused/Running state and hands every diff to the renderer.
type Driver struct {
	sim      core.Sim
	renderer Renderer
	pacer    *core.Pacer
	scale    int

	state   State
	started bool
	gen     int
	last    core.Diff
	stats   core.Stats
}

// NewDriver wraps sim in a paused driver and paints the initial grid when the
// renderer supports it.
func NewDriver(sim core.Sim, r Renderer, freq float64, scale int) *Driver {
	if scale <= 0 {
		scale = 1
	}
	d := &Driver{
		sim:      sim,
		renderer: r,
		pacer:    core.NewPacer(freq),
		scale:    scale,
		state:    Paused,
	}
	if full, ok := r.(FullRenderer); ok {
		full.Full(sim.Cells(), sim.Size(), scale)
	}
	d.stats.Update(0, d.population(), 0, 0)
	return d
}

// Start performs one immediate step and switches to Running. Later calls and
// calls on a stopped driver do nothing.
func (d *Driver) Start() {
	if d.state == Stopped || d.started {
		return
	}
	d.started = true
	d.step()
	d.state = Running
}

// Stop ends the session. A stopped driver never steps again.
func (d *Driver) Stop() {
	d.state = Stopped
}

// Pause suspends scheduled steps without touching the grid.
func (d *Driver) Pause() {
	if d.state == Running {
		d.state = Paused
	}
}

// Play resumes scheduled steps. The pacer re-primes so time spent paused does
// not produce an immediate step.
func (d *Driver) Play() {
	if d.state == Paused {
		d.pacer.Reset()
		d.state = Running
	}
}

// Toggle flips between Running and Paused.
func (d *Driver) Toggle() {
	switch d.state {
	case Running:
		d.Pause()
	case Paused:
		d.Play()
	}
}

// Tick is the scheduler entry point. now is the scheduler's clock reading; a
// step runs only while Running and once a full period has elapsed since the
// previous one. It returns the applied diff, or nil when nothing ran.
func (d *Driver) Tick(now time.Duration) core.Diff {
	if d.state != Running {
		return nil
	}
	if !d.pacer.Ready(now) {
		return nil
	}
	return d.step()
}

// Step advances one generation regardless of pause. Stopped drivers ignore it.
func (d *Driver) Step() core.Diff {
	if d.state == Stopped {
		return nil
	}
	return d.step()
}

func (d *Driver) step() core.Diff {
	diff := d.sim.Step()
	d.gen++
	d.last = diff

	frontier := 0
	if fr, ok := d.sim.(core.FrontierReporter); ok {
		frontier = len(fr.FrontierCells())
	}
	d.stats.Update(d.gen, d.population(), len(diff), frontier)

	if d.renderer != nil {
		d.renderer.Render(diff, d.scale)
	}
	return diff
}

func (d *Driver) population() int {
	if pc, ok := d.sim.(core.PopulationCounter); ok {
		return pc.Population()
	}
	n := 0
	for _, c := range d.sim.Cells() {
		n += int(c)
	}
	return n
}

// State returns the current running mode.
func (d *Driver) State() State { return d.state }

// Sim returns the engine driven by d.
func (d *Driver) Sim() core.Sim { return d.sim }

// LastDiff returns the diff of the most recent step.
func (d *Driver) LastDiff() core.Diff { return d.last }

// Stats returns a snapshot of the step statistics.
func (d *Driver) Stats() core.Stats { return d.stats }

// Scale returns the cell pixel size.
func (d *Driver) Scale() int { return d.scale }

// Frequency returns the target steps per second.
func (d *Driver) Frequency() float64 { return d.pacer.Frequency() }

// SetFrequency changes the target steps per second.
func (d *Driver) SetFrequency(f float64) { d.pacer.SetFrequency(f) }

// Parameters reports the session values for the HUD.
func (d *Driver) Parameters() core.ParameterSnapshot {
	size := d.sim.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Session",
			Params: []core.Parameter{
				{Key: "engine", Label: "Engine", Type: core.ParamTypeString, Value: d.sim.Name()},
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: d.state.String()},
				{Key: "size", Label: "Grid", Type: core.ParamTypeString, Value: strconv.Itoa(size.W) + "x" + strconv.Itoa(size.H)},
				{Key: "freq", Label: "Frequency", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(d.Frequency(), 'f', 1, 64)},
			},
		},
		{
			Name: "Step",
			Params: []core.Parameter{
				{Key: "gen", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(d.stats.Generation)},
				{Key: "pop", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(d.stats.Population)},
				{Key: "changed", Label: "Changed", Type: core.ParamTypeInt, Value: strconv.Itoa(d.stats.Changed)},
				{Key: "frontier", Label: "Frontier", Type: core.ParamTypeInt, Value: strconv.Itoa(d.stats.Frontier)},
				{Key: "avg_pop", Label: "Avg population", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(d.stats.AveragePopulation, 'f', 1, 64)},
			},
		},
	}}
}

// ParameterControls exposes the frequency as the only adjustable value.
func (d *Driver) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "freq", Label: "Frequency", Step: 5, Min: 1, HasMin: true, Max: 240, HasMax: true},
	}
}

// FloatParameter returns the current value of a float control.
func (d *Driver) FloatParameter(key string) (float64, bool) {
	if key == "freq" {
		return d.Frequency(), true
	}
	return 0, false
}

// SetFloatParameter updates a float control.
func (d *Driver) SetFloatParameter(key string, value float64) bool {
	if key != "freq" || value <= 0 {
		return false
	}
	d.SetFrequency(value)
	return true
}
