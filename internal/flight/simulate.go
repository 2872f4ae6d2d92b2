package flight

import (
	"fmt"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/physics"
	"github.com/san-kum/trajsim/internal/sim"
)

// Metric names reported by Trajectory.Metrics.
const (
	MetricApex        = "apex_m"
	MetricMaxSpeed    = "max_speed_mps"
	MetricEnergyDrift = "energy_drift"
)

// Simulate integrates cfg with semi-implicit Euler.
func Simulate(cfg Config) (*Trajectory, error) {
	return SimulateWith(cfg, integrators.NewSemiImplicitEuler())
}

// SimulateWith runs the same loop as Simulate with another integrator.
// Only Simulate has the velocity-then-position update order.
func SimulateWith(cfg Config, integ dynamo.Integrator) (*Trajectory, error) {
	if !cfg.valid {
		return nil, &ConfigError{Field: "config", Reason: "not built by NewConfig"}
	}

	dyn := physics.NewProjectile(cfg.mass, cfg.drag, cfg.area)

	s := sim.New(dyn, integ)
	s.StopWhen(belowGround)
	s.AddMetric(metrics.NewPeak(MetricApex, physics.IdxY))
	s.AddMetric(metrics.NewMaxSpeed(physics.IdxVX, physics.IdxVY))
	s.AddMetric(metrics.NewEnergyDrift(dyn))

	x0 := physics.InitialState(cfg.speed, cfg.angleDeg)
	result, err := s.Run(x0, sim.Config{
		Dt:            cfg.dt,
		MaxTime:       cfg.maxTime,
		ValidateState: true,
	})
	if err != nil {
		return nil, fmt.Errorf("flight: simulate: %w", err)
	}

	return newTrajectory(result, cfg.dt), nil
}

func belowGround(x dynamo.State, _ float64) bool {
	return x[physics.IdxY] < 0
}

func newTrajectory(result *sim.Result, dt float64) *Trajectory {
	samples := make([]Sample, len(result.States))
	for i, x := range result.States {
		samples[i] = Sample{
			Time: result.Times[i],
			X:    x[physics.IdxX],
			Y:    x[physics.IdxY],
			VX:   x[physics.IdxVX],
			VY:   x[physics.IdxVY],
		}
	}
	return &Trajectory{samples: samples, metrics: result.Metrics, dt: dt}
}
