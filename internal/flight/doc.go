// Package flight simulates the planar flight of a point mass, such as a
// paper airplane, under gravity and quadratic air drag.
//
// A run starts at the origin, advances with semi-implicit Euler at a fixed
// step, and ends on the first sample below ground (y < 0) or once the
// simulated time reaches the configured budget:
//
//	cfg, err := flight.NewConfig(0.005, 10, 30, 0.1, 0.01)
//	if err != nil {
//	    return err
//	}
//	traj, err := flight.Simulate(cfg)
//	fmt.Printf("range %.2f m, apex %.2f m\n", traj.Range(), traj.MaxHeight())
//
// Simulate is a pure function of its Config. It keeps no state between
// calls and gives bit-identical results for identical inputs.
package flight
