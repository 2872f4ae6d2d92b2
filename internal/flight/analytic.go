package flight

import (
	"math"

	"github.com/san-kum/trajsim/internal/physics"
)

// Closed-form results for a launch from ground level without drag.

func FrictionlessRange(speed, angleDeg float64) float64 {
	angle := angleDeg * physics.DegToRad
	return speed * speed * math.Sin(2*angle) / physics.Gravity
}

func FrictionlessApex(speed, angleDeg float64) float64 {
	vy := speed * math.Sin(angleDeg*physics.DegToRad)
	return vy * vy / (2 * physics.Gravity)
}

func FrictionlessFlightTime(speed, angleDeg float64) float64 {
	return 2 * speed * math.Sin(angleDeg*physics.DegToRad) / physics.Gravity
}
