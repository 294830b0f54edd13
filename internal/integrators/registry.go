package integrators

import (
	"fmt"

	"github.com/san-kum/odelab/internal/ode"
)

// Stepper advances a scalar state across one step of width h.
type Stepper interface {
	Name() string
	Step(f ode.Func, x, y, h float64) float64
}

// AdaptiveStepper additionally reports an error estimate and a suggested
// next step size, enabling accept/reject control.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(f ode.Func, x, y, h, tol float64) (yNew, errRatio, hNext float64)
}

// ByName returns a fresh stepper instance.
func ByName(name string) (Stepper, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	case "rk45":
		return NewRK45(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}
