package integrators

import "github.com/san-kum/odelab/internal/ode"

// Euler is the explicit first-order method, kept as a cheap baseline.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(f ode.Func, x, y, h float64) float64 {
	return y + h*f(x, y)
}
