// Package physics provides dynamical system models for simulation.
//
// [Projectile] implements [dynamo.System] for a point mass under gravity and
// quadratic aerodynamic drag. It also implements [dynamo.Hamiltonian] for
// energy bookkeeping and [dynamo.Configurable] for runtime parameter
// adjustment.
//
// # Energy
//
// Without drag the mechanical energy is conserved by the exact dynamics, so
// its drift measures integrator error:
//
//	dyn := physics.NewProjectile(0.005, 0, 0)
//	if h, ok := dyn.(dynamo.Hamiltonian); ok {
//	    energy := h.Energy(state)
//	}
package physics
