// Package convergence verifies the order of accuracy of a fixed-step method
// by repeated grid refinement against a known exact solution.
package convergence

import (
	"math"
	"sync"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/solver"
)

// Level is one refinement: the grid, the global error at xEnd and the
// observed order relative to the previous level.
type Level struct {
	Steps int
	H     float64
	Err   float64
	Order float64 // log2(err_prev / err); 0 for the first level
}

// Study runs the stepper at p.Steps, 2*p.Steps, 4*p.Steps, ... doubling
// levels-1 times, and measures the global error at xEnd against exact. The
// runs are independent and execute concurrently. For RK4 the observed order
// approaches 4 as h shrinks.
func Study(p ode.Problem, s integrators.Stepper, exact func(x float64) float64, levels int) ([]Level, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := make([]Level, levels)
	errs := make([]error, levels)

	var wg sync.WaitGroup
	for i := 0; i < levels; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			pc := p
			pc.Steps = p.Steps << idx

			tr, err := solver.FixedStep(pc, s)
			if err != nil {
				errs[idx] = err
				return
			}

			xN, yN := tr.Final()
			out[idx] = Level{
				Steps: pc.Steps,
				H:     pc.H(),
				Err:   math.Abs(yN - exact(xN)),
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for i := 1; i < levels; i++ {
		if out[i].Err > 0 {
			out[i].Order = math.Log2(out[i-1].Err / out[i].Err)
		}
	}

	return out, nil
}
