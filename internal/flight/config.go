package flight

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultTimeStep = 0.01
	DefaultMaxTime  = 100.0
)

// Config holds validated launch and integration parameters. The zero value
// is not usable; build one with NewConfig.
type Config struct {
	mass     float64
	speed    float64
	angleDeg float64
	drag     float64
	area     float64
	dt       float64
	maxTime  float64
	valid    bool
}

type Option func(*Config)

func WithTimeStep(dt float64) Option {
	return func(c *Config) { c.dt = dt }
}

func WithMaxTime(seconds float64) Option {
	return func(c *Config) { c.maxTime = seconds }
}

// NewConfig validates every parameter and returns all violations joined.
// The launch angle is in degrees.
func NewConfig(mass, speed, angleDeg, drag, area float64, opts ...Option) (Config, error) {
	c := Config{
		mass:     mass,
		speed:    speed,
		angleDeg: angleDeg,
		drag:     drag,
		area:     area,
		dt:       DefaultTimeStep,
		maxTime:  DefaultMaxTime,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	c.valid = true
	return c, nil
}

func (c Config) validate() error {
	var errs []error
	check := func(field string, v float64, ok bool, reason string) {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			errs = append(errs, &ConfigError{Field: field, Value: v, Reason: "must be finite"})
		case !ok:
			errs = append(errs, &ConfigError{Field: field, Value: v, Reason: reason})
		}
	}

	check("mass_kg", c.mass, c.mass > 0, "must be > 0")
	check("initial_speed_mps", c.speed, c.speed >= 0, "must be >= 0")
	check("launch_angle_deg", c.angleDeg, true, "")
	check("drag_coefficient", c.drag, c.drag >= 0, "must be >= 0")
	check("wing_area_sqm", c.area, c.area >= 0, "must be >= 0")
	check("time_step_s", c.dt, c.dt > 0, "must be > 0")
	check("max_time_s", c.maxTime, c.maxTime > 0, "must be > 0")

	return errors.Join(errs...)
}

func (c Config) Mass() float64            { return c.mass }
func (c Config) InitialSpeed() float64    { return c.speed }
func (c Config) LaunchAngle() float64     { return c.angleDeg }
func (c Config) DragCoefficient() float64 { return c.drag }
func (c Config) WingArea() float64        { return c.area }
func (c Config) TimeStep() float64        { return c.dt }
func (c Config) MaxTime() float64         { return c.maxTime }

// Frictionless reports whether drag vanishes for this configuration.
func (c Config) Frictionless() bool {
	return c.drag == 0 || c.area == 0
}

// Parameter names accepted by Params and WithParam.
const (
	ParamMass    = "mass"
	ParamSpeed   = "speed"
	ParamAngle   = "angle"
	ParamDrag    = "drag"
	ParamArea    = "area"
	ParamDt      = "dt"
	ParamMaxTime = "max_time"
)

func (c Config) Params() map[string]float64 {
	return map[string]float64{
		ParamMass:    c.mass,
		ParamSpeed:   c.speed,
		ParamAngle:   c.angleDeg,
		ParamDrag:    c.drag,
		ParamArea:    c.area,
		ParamDt:      c.dt,
		ParamMaxTime: c.maxTime,
	}
}

// WithParam returns a copy with one parameter replaced, validated again.
func (c Config) WithParam(name string, value float64) (Config, error) {
	next := c
	switch name {
	case ParamMass:
		next.mass = value
	case ParamSpeed:
		next.speed = value
	case ParamAngle:
		next.angleDeg = value
	case ParamDrag:
		next.drag = value
	case ParamArea:
		next.area = value
	case ParamDt:
		next.dt = value
	case ParamMaxTime:
		next.maxTime = value
	default:
		return Config{}, fmt.Errorf("unknown param: %s", name)
	}

	if err := next.validate(); err != nil {
		return Config{}, err
	}
	next.valid = true
	return next, nil
}
