// Package dynamo provides core simulation primitives for fixed-step
// integration of ordinary differential equations.
//
// The package defines the fundamental interfaces and types:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: single-step numerical integrator
//   - [Metric]: scalar summary accumulated over a run
//   - [Observer]: per-step callback
//
// # Example
//
//	dyn := physics.NewProjectile(0.005, 0.1, 0.01)
//	integ := integrators.NewSemiImplicitEuler()
//	x := integ.Step(dyn, x0, 0, 0.01)
//
// # Thread Safety
//
// Nothing in this package holds shared state. Integrators may keep scratch
// buffers, so a single integrator value must not be stepped from two
// goroutines at once.
package dynamo
