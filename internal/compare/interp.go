package compare

import (
	"github.com/san-kum/odelab/internal/ode"
)

// Resample evaluates a trajectory on a new grid by piecewise-linear
// interpolation. Grid points outside the source interval clamp to the
// boundary samples. The source Xs must be strictly increasing, which every
// solver in this module guarantees.
func Resample(src *ode.Trajectory, grid []float64) *ode.Trajectory {
	out := ode.NewTrajectory(len(grid) - 1)

	j := 0
	for _, x := range grid {
		switch {
		case x <= src.Xs[0]:
			out.Append(x, src.Ys[0])
		case x >= src.Xs[len(src.Xs)-1]:
			out.Append(x, src.Ys[len(src.Ys)-1])
		default:
			for src.Xs[j+1] < x {
				j++
			}
			x0, x1 := src.Xs[j], src.Xs[j+1]
			y0, y1 := src.Ys[j], src.Ys[j+1]
			frac := (x - x0) / (x1 - x0)
			out.Append(x, y0+frac*(y1-y0))
		}
	}

	return out
}
