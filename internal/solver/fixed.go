package solver

import (
	"math"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
)

// FixedStep integrates the problem with a uniform grid x_i = x0 + i*h,
// h = (xEnd-x0)/steps, producing exactly steps+1 samples. The first sample
// is the initial condition verbatim.
//
// The right-hand side is checked on every evaluation, including the stage
// midpoints: the first NaN/Inf aborts the run with a DomainError instead of
// letting it propagate through the remaining steps. Either the whole
// trajectory is returned or none of it.
func FixedStep(p ode.Problem, s integrators.Stepper) (*ode.Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tr := ode.NewTrajectory(p.Steps)
	tr.Append(p.X0, p.Y0)
	if p.Steps == 0 {
		return tr, nil
	}

	var bad *ode.DomainError
	step := 0
	f := func(x, y float64) float64 {
		v := p.F(x, y)
		if bad == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			bad = &ode.DomainError{Step: step, X: x, Y: y, Value: v}
		}
		return v
	}

	h := p.H()
	y := p.Y0
	for i := 0; i < p.Steps; i++ {
		step = i
		x := p.X0 + float64(i)*h
		y = s.Step(f, x, y, h)
		if bad != nil {
			return nil, bad
		}
		tr.Append(p.X0+float64(i+1)*h, y)
	}

	return tr, nil
}
