package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajsim/internal/flight"
)

const (
	DefaultIntegrator = "semi_implicit_euler"
	DefaultMass       = 0.005
	DefaultSpeed      = 10.0
	DefaultAngle      = 30.0
	DefaultDrag       = 0.1
	DefaultArea       = 0.01
)

type Config struct {
	Integrator  string            `yaml:"integrator"`
	Launch      LaunchConfig      `yaml:"launch"`
	Integration IntegrationConfig `yaml:"integration"`
}

type LaunchConfig struct {
	Mass            float64 `yaml:"mass_kg"`
	InitialSpeed    float64 `yaml:"initial_speed_mps"`
	LaunchAngle     float64 `yaml:"launch_angle_deg"`
	DragCoefficient float64 `yaml:"drag_coefficient"`
	WingArea        float64 `yaml:"wing_area_sqm"`
}

type IntegrationConfig struct {
	TimeStep float64 `yaml:"time_step_s"`
	MaxTime  float64 `yaml:"max_time_s"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: DefaultIntegrator,
		Launch: LaunchConfig{
			Mass:            DefaultMass,
			InitialSpeed:    DefaultSpeed,
			LaunchAngle:     DefaultAngle,
			DragCoefficient: DefaultDrag,
			WingArea:        DefaultArea,
		},
		Integration: IntegrationConfig{
			TimeStep: flight.DefaultTimeStep,
			MaxTime:  flight.DefaultMaxTime,
		},
	}
}

// Load overlays the YAML file at path onto DefaultConfig, so omitted keys
// keep their defaults.
func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto overlays the YAML file at path onto a copy of base. Keys the file
// omits keep the base values; base itself is not modified.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Flight validates the parameters and builds the simulator configuration.
func (c *Config) Flight() (flight.Config, error) {
	return flight.NewConfig(
		c.Launch.Mass,
		c.Launch.InitialSpeed,
		c.Launch.LaunchAngle,
		c.Launch.DragCoefficient,
		c.Launch.WingArea,
		flight.WithTimeStep(c.Integration.TimeStep),
		flight.WithMaxTime(c.Integration.MaxTime),
	)
}
