package metrics

import (
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
)

// Peak tracks the maximum of one state component.
type Peak struct {
	name  string
	index int
	max   float64
	seen  bool
}

func NewPeak(name string, index int) *Peak {
	return &Peak{name: name, index: index}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(x dynamo.State, t float64) {
	if p.index >= len(x) {
		return
	}
	if !p.seen || x[p.index] > p.max {
		p.max = x[p.index]
		p.seen = true
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() {
	p.max = 0
	p.seen = false
}

// MaxSpeed tracks the largest |(x[vx], x[vy])| seen.
type MaxSpeed struct {
	vx, vy int
	max    float64
}

func NewMaxSpeed(vx, vy int) *MaxSpeed {
	return &MaxSpeed{vx: vx, vy: vy}
}

func (m *MaxSpeed) Name() string { return "max_speed_mps" }

func (m *MaxSpeed) Observe(x dynamo.State, t float64) {
	if m.vx >= len(x) || m.vy >= len(x) {
		return
	}
	m.max = math.Max(m.max, math.Hypot(x[m.vx], x[m.vy]))
}

func (m *MaxSpeed) Value() float64 { return m.max }

func (m *MaxSpeed) Reset() { m.max = 0 }
