package experiment

import (
	"math"
	"time"

	"github.com/san-kum/trajsim/internal/flight"
)

// Comparison summarizes one integrator on a shared configuration.
type Comparison struct {
	Integrator  string
	Range       float64
	Apex        float64
	FlightTime  float64
	EnergyDrift float64
	Outcome     flight.Outcome
	// RangeError is |Range - analytic range|, NaN when drag is present.
	RangeError float64
	Elapsed    time.Duration
}

// Run simulates cfg with the named integrator.
func (r *Registry) Run(cfg flight.Config, name string) (*flight.Trajectory, error) {
	integ, err := r.GetIntegrator(name)
	if err != nil {
		return nil, err
	}
	return flight.SimulateWith(cfg, integ)
}

// Compare runs each named integrator in turn. It stops at the first
// unknown name or failed run.
func (r *Registry) Compare(cfg flight.Config, names []string) ([]Comparison, error) {
	exact := math.NaN()
	if cfg.Frictionless() {
		exact = flight.FrictionlessRange(cfg.InitialSpeed(), cfg.LaunchAngle())
	}

	out := make([]Comparison, 0, len(names))
	for _, name := range names {
		start := time.Now()
		traj, err := r.Run(cfg, name)
		if err != nil {
			return nil, err
		}

		out = append(out, Comparison{
			Integrator:  r.Canonical(name),
			Range:       traj.Range(),
			Apex:        traj.MaxHeight(),
			FlightTime:  traj.FlightTime(),
			EnergyDrift: traj.Metrics()[flight.MetricEnergyDrift],
			Outcome:     traj.Outcome(),
			RangeError:  math.Abs(traj.Range() - exact),
			Elapsed:     time.Since(start),
		})
	}
	return out, nil
}
