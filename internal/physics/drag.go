package physics

import "math"

// Drag returns the quadratic drag force opposing the velocity (vx, vy):
// |F| = 0.5 * rho * v^2 * cd * area. At rest the force is zero.
func Drag(vx, vy, rho, cd, area float64) (fx, fy float64) {
	speed := math.Sqrt(vx*vx + vy*vy)
	magnitude := 0.5 * rho * (speed * speed) * cd * area

	if speed > 0 {
		return -magnitude * (vx / speed), -magnitude * (vy / speed)
	}
	return 0, 0
}
