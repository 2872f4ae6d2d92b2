package automation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/flight"
)

// Scenario is a scripted sequence of flights.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep starts from a preset (or the defaults) and overrides
// individual parameters by name.
type ScenarioStep struct {
	Name       string             `yaml:"name"`
	Preset     string             `yaml:"preset"`
	Integrator string             `yaml:"integrator"`
	Params     map[string]float64 `yaml:"params"`
}

// StepResult pairs a scenario step with its flight.
type StepResult struct {
	Name       string
	Integrator string
	Config     flight.Config
	Trajectory *flight.Trajectory
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// RunScenario executes the steps in order and stops at the first failure.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		base := config.DefaultConfig()
		if step.Preset != "" {
			base = config.GetPreset(step.Preset)
			if base == nil {
				return results, fmt.Errorf("step %d: unknown preset %q", i+1, step.Preset)
			}
		}
		if step.Integrator != "" {
			base.Integrator = step.Integrator
		}

		cfg, err := base.Flight()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		for _, k := range sortedKeys(step.Params) {
			if cfg, err = cfg.WithParam(k, step.Params[k]); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}

		traj, err := registry.Run(cfg, base.Integrator)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}
		results = append(results, StepResult{
			Name:       name,
			Integrator: registry.Canonical(base.Integrator),
			Config:     cfg,
			Trajectory: traj,
		})
	}

	return results, nil
}

// ParameterSweep varies one launch parameter over NumSteps evenly spaced
// values in [ParamMin, ParamMax].
type ParameterSweep struct {
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
}

type SweepResult struct {
	ParamValue float64
	Range      float64
	MaxHeight  float64
	FlightTime float64
	Outcome    flight.Outcome
}

func RunSweep(ctx context.Context, base flight.Config, sweep *ParameterSweep) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.NumSteps)
	}
	if _, ok := base.Params()[sweep.ParamName]; !ok {
		return nil, fmt.Errorf("unknown parameter: %s", sweep.ParamName)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	paramStep := (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)

	for i := 0; i < sweep.NumSteps; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		paramVal := sweep.ParamMin + float64(i)*paramStep
		cfg, err := base.WithParam(sweep.ParamName, paramVal)
		if err != nil {
			return results, fmt.Errorf("%s=%g: %w", sweep.ParamName, paramVal, err)
		}

		traj, err := flight.Simulate(cfg)
		if err != nil {
			return results, fmt.Errorf("%s=%g: %w", sweep.ParamName, paramVal, err)
		}

		results = append(results, SweepResult{
			ParamValue: paramVal,
			Range:      traj.Range(),
			MaxHeight:  traj.MaxHeight(),
			FlightTime: traj.FlightTime(),
			Outcome:    traj.Outcome(),
		})
	}

	return results, nil
}

// MonteCarloConfig perturbs launch speed and angle uniformly within
// ±SpeedJitter and ±AngleJitter.
type MonteCarloConfig struct {
	Base        flight.Config
	SpeedJitter float64
	AngleJitter float64
	NumTrials   int
	Seed        int64
}

type MonteCarloResult struct {
	TrialID int
	Speed   float64
	Angle   float64
	Range   float64
	Landed  bool
}

// RunMonteCarlo is deterministic for a given Seed.
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig) ([]MonteCarloResult, error) {
	if cfg.NumTrials <= 0 {
		return nil, fmt.Errorf("monte carlo needs at least 1 trial, got %d", cfg.NumTrials)
	}
	results := make([]MonteCarloResult, 0, cfg.NumTrials)
	rng := rand.New(rand.NewSource(cfg.Seed))

	for trial := 0; trial < cfg.NumTrials; trial++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		speed := math.Max(0, cfg.Base.InitialSpeed()+(rng.Float64()-0.5)*2*cfg.SpeedJitter)
		angle := cfg.Base.LaunchAngle() + (rng.Float64()-0.5)*2*cfg.AngleJitter

		fc, err := cfg.Base.WithParam(flight.ParamSpeed, speed)
		if err == nil {
			fc, err = fc.WithParam(flight.ParamAngle, angle)
		}
		if err != nil {
			return results, fmt.Errorf("trial %d: %w", trial, err)
		}

		traj, err := flight.Simulate(fc)
		if err != nil {
			return results, fmt.Errorf("trial %d: %w", trial, err)
		}

		results = append(results, MonteCarloResult{
			TrialID: trial,
			Speed:   speed,
			Angle:   angle,
			Range:   traj.Range(),
			Landed:  traj.Outcome() == flight.Landed,
		})
	}

	return results, nil
}

// Dispersion summarizes the spread of landing distances.
type Dispersion struct {
	Trials   int
	Landed   int
	Mean     float64
	StdDev   float64
	Min, Max float64
}

func MonteCarloStats(results []MonteCarloResult) Dispersion {
	d := Dispersion{Trials: len(results)}
	if len(results) == 0 {
		return d
	}

	d.Min, d.Max = math.Inf(1), math.Inf(-1)
	var sum float64
	for _, r := range results {
		if r.Landed {
			d.Landed++
		}
		sum += r.Range
		d.Min = math.Min(d.Min, r.Range)
		d.Max = math.Max(d.Max, r.Range)
	}
	d.Mean = sum / float64(len(results))

	var ss float64
	for _, r := range results {
		ss += (r.Range - d.Mean) * (r.Range - d.Mean)
	}
	d.StdDev = math.Sqrt(ss / float64(len(results)))
	return d
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
