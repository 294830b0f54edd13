// Package ode provides the core primitives for scalar ODE integration.
//
// The package defines the fundamental types shared by the integrators and
// solvers:
//
//   - [Func]: right-hand side of dy/dx = f(x, y)
//   - [Problem]: initial point, interval and step count of one run
//   - [Trajectory]: ordered (x, y) samples produced by an integrator
//
// # Errors
//
// Integration fails fast: the first non-finite right-hand-side evaluation
// surfaces as a [DomainError] rather than propagating NaN through the
// remaining steps, and bad parameters surface as a [ConfigError] before any
// stepping happens. Both unwrap to their sentinel for errors.Is checks:
//
//	if errors.Is(err, ode.ErrDomain) {
//	    // f was evaluated where it is undefined
//	}
package ode
