package sim

import "github.com/san-kum/trajsim/internal/dynamo"

// StopFunc reports whether the run has reached a terminal state.
type StopFunc func(x dynamo.State, t float64) bool

type Config struct {
	Dt            float64
	MaxTime       float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		MaxTime:       100.0,
		ValidateState: true,
	}
}

type Result struct {
	States     []dynamo.State
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Stopped    bool
}
