package core

import "time"

// DefaultFrequency is the step rate used when a non-positive one is requested.
const DefaultFrequency = 60

// Pacer gates simulation steps to a target frequency. The scheduler supplies
// the current time on every call so any clock can drive it.
type Pacer struct {
	freq   float64
	period time.Duration
	last   time.Duration
	primed bool
}

// NewPacer constructs a Pacer targeting freq steps per second.
func NewPacer(freq float64) *Pacer {
	p := &Pacer{}
	p.SetFrequency(freq)
	return p
}

// SetFrequency changes the step rate. It is safe to call between ticks.
func (p *Pacer) SetFrequency(freq float64) {
	if freq <= 0 {
		freq = DefaultFrequency
	}
	p.freq = freq
	p.period = time.Duration(float64(time.Second) / freq)
}

// Frequency returns the target steps per second.
func (p *Pacer) Frequency() float64 { return p.freq }

// Period returns the minimum time between two steps.
func (p *Pacer) Period() time.Duration { return p.period }

// Ready reports whether a step is due at now. The first call only records the
// reference time.
func (p *Pacer) Ready(now time.Duration) bool {
	if !p.primed {
		p.last = now
		p.primed = true
	}
	if now-p.last >= p.period {
		p.last = now
		return true
	}
	return false
}

// Reset forgets the reference time.
func (p *Pacer) Reset() {
	p.primed = false
	p.last = 0
}
