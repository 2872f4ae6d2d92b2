package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
)

const (
	Gravity    = 9.81  // m/s^2
	AirDensity = 1.225 // kg/m^3, sea level

	DegToRad = math.Pi / 180
)

// State layout shared by every consumer of Projectile.
const (
	IdxX = iota
	IdxY
	IdxVX
	IdxVY
)

// Projectile is a point mass in a vertical plane under uniform gravity and
// quadratic drag. State is [x, y, vx, vy].
type Projectile struct {
	Mass            float64
	DragCoefficient float64
	WingArea        float64
	Gravity         float64
	AirDensity      float64
}

func NewProjectile(mass, dragCoefficient, wingArea float64) *Projectile {
	return &Projectile{
		Mass:            mass,
		DragCoefficient: dragCoefficient,
		WingArea:        wingArea,
		Gravity:         Gravity,
		AirDensity:      AirDensity,
	}
}

func (p *Projectile) StateDim() int {
	return 4
}

// Derive returns [vx, vy, ax, ay].
func (p *Projectile) Derive(x dynamo.State, t float64) dynamo.State {
	vx, vy := x[IdxVX], x[IdxVY]

	dragFx, dragFy := Drag(vx, vy, p.AirDensity, p.DragCoefficient, p.WingArea)

	netFx := dragFx
	netFy := dragFy - p.Mass*p.Gravity

	ax := netFx / p.Mass
	ay := netFy / p.Mass

	return dynamo.State{vx, vy, ax, ay}
}

// Energy is the specific mechanical energy (per unit mass), so it stays
// meaningful for any positive mass.
func (p *Projectile) Energy(x dynamo.State) float64 {
	vx, vy := x[IdxVX], x[IdxVY]
	return 0.5*(vx*vx+vy*vy) + p.Gravity*x[IdxY]
}

func (p *Projectile) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":        p.Mass,
		"drag":        p.DragCoefficient,
		"area":        p.WingArea,
		"gravity":     p.Gravity,
		"air_density": p.AirDensity,
	}
}

func (p *Projectile) SetParam(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be finite", dynamo.ErrInvalidConfiguration, name)
	}
	switch name {
	case "mass":
		if value <= 0 {
			return fmt.Errorf("%w: mass must be positive", dynamo.ErrInvalidConfiguration)
		}
		p.Mass = value
	case "drag":
		if value < 0 {
			return fmt.Errorf("%w: drag must be non-negative", dynamo.ErrInvalidConfiguration)
		}
		p.DragCoefficient = value
	case "area":
		if value < 0 {
			return fmt.Errorf("%w: area must be non-negative", dynamo.ErrInvalidConfiguration)
		}
		p.WingArea = value
	case "gravity":
		p.Gravity = value
	case "air_density":
		p.AirDensity = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// InitialState converts launch speed and angle (degrees) to [0, 0, vx, vy].
func InitialState(speed, angleDeg float64) dynamo.State {
	angle := angleDeg * DegToRad
	return dynamo.State{0, 0, speed * math.Cos(angle), speed * math.Sin(angle)}
}
