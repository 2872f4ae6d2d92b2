package flight

import (
	"math"
	"strconv"
)

// Sample is one recorded instant of a run.
type Sample struct {
	Time float64 `json:"time_s"`
	X    float64 `json:"x_m"`
	Y    float64 `json:"y_m"`
	VX   float64 `json:"vx_mps"`
	VY   float64 `json:"vy_mps"`
}

func (s Sample) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}

type Outcome int

const (
	// Landed means the final sample is below ground level.
	Landed Outcome = iota
	// TimedOut means the time budget ran out while still airborne.
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Landed:
		return "landed"
	case TimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// Trajectory is the ordered, immutable output of one run. Samples[0] is the
// launch point and consecutive samples are one time step apart.
type Trajectory struct {
	samples []Sample
	metrics map[string]float64
	dt      float64
}

func (tr *Trajectory) Len() int { return len(tr.samples) }

// Steps is the number of integration steps, Len()-1.
func (tr *Trajectory) Steps() int { return len(tr.samples) - 1 }

func (tr *Trajectory) At(i int) Sample { return tr.samples[i] }

func (tr *Trajectory) Final() Sample { return tr.samples[len(tr.samples)-1] }

func (tr *Trajectory) TimeStep() float64 { return tr.dt }

// Samples returns a copy of the recorded samples.
func (tr *Trajectory) Samples() []Sample {
	out := make([]Sample, len(tr.samples))
	copy(out, tr.samples)
	return out
}

func (tr *Trajectory) Outcome() Outcome {
	if tr.Final().Y < 0 {
		return Landed
	}
	return TimedOut
}

// Range is the horizontal position of the final sample.
func (tr *Trajectory) Range() float64 { return tr.Final().X }

func (tr *Trajectory) FlightTime() float64 { return tr.Final().Time }

func (tr *Trajectory) MaxHeight() float64 {
	apex := tr.samples[0].Y
	for _, s := range tr.samples[1:] {
		apex = math.Max(apex, s.Y)
	}
	return apex
}

// LandingX linearly interpolates where the path crosses y = 0 between the
// last two samples. ok is false unless the run landed.
func (tr *Trajectory) LandingX() (x float64, ok bool) {
	if tr.Outcome() != Landed || len(tr.samples) < 2 {
		return 0, false
	}
	a, b := tr.samples[len(tr.samples)-2], tr.samples[len(tr.samples)-1]
	frac := a.Y / (a.Y - b.Y)
	return a.X + frac*(b.X-a.X), true
}

// Metrics returns a copy of the per-run metric values.
func (tr *Trajectory) Metrics() map[string]float64 {
	out := make(map[string]float64, len(tr.metrics))
	for k, v := range tr.metrics {
		out[k] = v
	}
	return out
}

// Points returns the (x, y) path.
func (tr *Trajectory) Points() (xs, ys []float64) {
	xs = make([]float64, len(tr.samples))
	ys = make([]float64, len(tr.samples))
	for i, s := range tr.samples {
		xs[i], ys[i] = s.X, s.Y
	}
	return xs, ys
}

var RecordHeader = []string{"time_s", "x_m", "y_m"}

// Records renders the trajectory as a header row followed by one
// (time, x, y) row per sample.
func (tr *Trajectory) Records() [][]string {
	rows := make([][]string, 0, len(tr.samples)+1)
	rows = append(rows, RecordHeader)
	for _, s := range tr.samples {
		rows = append(rows, []string{
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.X, 'f', 6, 64),
			strconv.FormatFloat(s.Y, 'f', 6, 64),
		})
	}
	return rows
}
