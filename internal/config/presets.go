package config

import (
	"sort"

	"github.com/san-kum/trajsim/internal/flight"
)

var Presets = map[string]*Config{
	"paper_plane": DefaultConfig(),
	"vacuum": {
		Integrator:  DefaultIntegrator,
		Launch:      LaunchConfig{Mass: 0.005, InitialSpeed: 10, LaunchAngle: 30},
		Integration: IntegrationConfig{TimeStep: 0.01, MaxTime: 100},
	},
	"dart": {
		Integrator:  DefaultIntegrator,
		Launch:      LaunchConfig{Mass: 0.012, InitialSpeed: 20, LaunchAngle: 15, DragCoefficient: 0.05, WingArea: 0.004},
		Integration: IntegrationConfig{TimeStep: 0.005, MaxTime: 30},
	},
	"glider": {
		Integrator:  DefaultIntegrator,
		Launch:      LaunchConfig{Mass: 0.02, InitialSpeed: 8, LaunchAngle: 10, DragCoefficient: 0.02, WingArea: 0.05},
		Integration: IntegrationConfig{TimeStep: 0.01, MaxTime: 60},
	},
	"lob": {
		Integrator:  DefaultIntegrator,
		Launch:      LaunchConfig{Mass: 0.05, InitialSpeed: 25, LaunchAngle: 70, DragCoefficient: 0.3, WingArea: 0.01},
		Integration: IntegrationConfig{TimeStep: 0.01, MaxTime: 100},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bound is the adjustable range of one launch parameter.
type Bound struct {
	Param string
	Label string
	Min   float64
	Max   float64
	Step  float64
}

// Clamp snaps v to the bound's range.
func (b Bound) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Bounds are the interactive ranges for each launch parameter. Every preset
// lies inside them.
var Bounds = []Bound{
	{Param: flight.ParamMass, Label: "mass (kg)", Min: 0.001, Max: 0.05, Step: 0.001},
	{Param: flight.ParamSpeed, Label: "initial speed (m/s)", Min: 1, Max: 30, Step: 1},
	{Param: flight.ParamAngle, Label: "launch angle (deg)", Min: 0, Max: 90, Step: 1},
	{Param: flight.ParamDrag, Label: "drag coefficient", Min: 0, Max: 1.0, Step: 0.01},
	{Param: flight.ParamArea, Label: "wing area (m^2)", Min: 0, Max: 0.1, Step: 0.001},
}
