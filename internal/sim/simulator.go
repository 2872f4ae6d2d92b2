package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
)

// maxPrealloc caps the up-front sample buffer; longer runs grow by append.
const maxPrealloc = 1 << 16

type Simulator struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	stop       StopFunc
	metrics    []dynamo.Metric
	observers  []dynamo.Observer
}

func New(dyn dynamo.System, integrator dynamo.Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		metrics:    make([]dynamo.Metric, 0),
		observers:  make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) StopWhen(fn StopFunc)          { s.stop = fn }
func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Run advances x0 with a fixed step until the stop predicate fires or the
// time reaches cfg.MaxTime. Every state is recorded, the initial one
// included, so len(States) == StepsTaken+1.
func (s *Simulator) Run(x0 dynamo.State, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(x0) != s.dyn.StateDim() {
		return nil, fmt.Errorf("%w: state has %d components, system wants %d",
			dynamo.ErrDimensionMismatch, len(x0), s.dyn.StateDim())
	}

	capacity := estimateSamples(cfg)
	result := &Result{
		States:  make([]dynamo.State, 0, capacity),
		Times:   make([]float64, 0, capacity),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	t := 0.0
	dt := cfg.Dt

	s.record(result, x, t)

	for i := 0; ; i++ {
		if s.stop != nil && s.stop(x, t) {
			result.Stopped = true
			break
		}
		if t >= cfg.MaxTime {
			break
		}

		newX := s.integrator.Step(s.dyn, x, t, dt)

		if cfg.ValidateState && !newX.IsValid() {
			s.collect(result)
			return result, &dynamo.SimulationError{Step: i, Time: t, State: newX, Wrapped: dynamo.ErrUnstable}
		}

		x = newX
		t += dt
		result.StepsTaken++

		s.record(result, x, t)
	}

	s.collect(result)
	return result, nil
}

func (s *Simulator) record(result *Result, x dynamo.State, t float64) {
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)

	for _, m := range s.metrics {
		m.Observe(x, t)
	}
	for _, obs := range s.observers {
		obs.OnStep(x, t)
	}
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if !(cfg.Dt > 0) || math.IsInf(cfg.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive and finite, got %v", dynamo.ErrInvalidConfiguration, cfg.Dt)
	}
	if !(cfg.MaxTime > 0) || math.IsInf(cfg.MaxTime, 0) {
		return fmt.Errorf("%w: max time must be positive and finite, got %v", dynamo.ErrInvalidConfiguration, cfg.MaxTime)
	}
	return nil
}

func estimateSamples(cfg Config) int {
	est := math.Ceil(cfg.MaxTime/cfg.Dt) + 1
	if est > maxPrealloc {
		return maxPrealloc
	}
	return int(est)
}
