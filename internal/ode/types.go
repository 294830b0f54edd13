package ode

import "math"

// Func is a right-hand side of a scalar first-order ODE: dy/dx = f(x, y).
type Func func(x, y float64) float64

// Trajectory holds the ordered samples (x_i, y_i) of one integration.
// Xs and Ys are parallel slices of equal length; Xs is strictly increasing.
type Trajectory struct {
	Xs []float64
	Ys []float64
}

// NewTrajectory allocates a trajectory with capacity for n+1 samples.
func NewTrajectory(n int) *Trajectory {
	return &Trajectory{
		Xs: make([]float64, 0, n+1),
		Ys: make([]float64, 0, n+1),
	}
}

func (tr *Trajectory) Append(x, y float64) {
	tr.Xs = append(tr.Xs, x)
	tr.Ys = append(tr.Ys, y)
}

func (tr *Trajectory) Len() int { return len(tr.Xs) }

// Final returns the last sample. Panics on an empty trajectory.
func (tr *Trajectory) Final() (x, y float64) {
	i := len(tr.Xs) - 1
	return tr.Xs[i], tr.Ys[i]
}

func (tr *Trajectory) Clone() *Trajectory {
	c := &Trajectory{
		Xs: make([]float64, len(tr.Xs)),
		Ys: make([]float64, len(tr.Ys)),
	}
	copy(c.Xs, tr.Xs)
	copy(c.Ys, tr.Ys)
	return c
}

// IsValid reports whether every sample is finite.
func (tr *Trajectory) IsValid() bool {
	for i := range tr.Xs {
		if math.IsNaN(tr.Xs[i]) || math.IsInf(tr.Xs[i], 0) {
			return false
		}
		if math.IsNaN(tr.Ys[i]) || math.IsInf(tr.Ys[i], 0) {
			return false
		}
	}
	return true
}

// Problem fixes one integration: the right-hand side, the initial point,
// the interval end and the number of fixed steps.
type Problem struct {
	F     Func
	X0    float64
	Y0    float64
	XEnd  float64
	Steps int
}

// H returns the fixed step size (XEnd-X0)/Steps. Zero when Steps is 0.
func (p Problem) H() float64 {
	if p.Steps == 0 {
		return 0
	}
	return (p.XEnd - p.X0) / float64(p.Steps)
}

// Validate checks the problem parameters. Steps == 0 is allowed and yields
// the degenerate single-sample trajectory.
func (p Problem) Validate() error {
	if p.F == nil {
		return &ConfigError{Field: "f", Reason: "right-hand side is nil"}
	}
	if p.Steps < 0 {
		return &ConfigError{Field: "steps", Reason: "must be non-negative", Value: float64(p.Steps)}
	}
	if p.XEnd <= p.X0 && p.Steps > 0 {
		return &ConfigError{Field: "xend", Reason: "interval end must exceed interval start", Value: p.XEnd}
	}
	if math.IsNaN(p.Y0) || math.IsInf(p.Y0, 0) {
		return &ConfigError{Field: "y0", Reason: "initial value must be finite", Value: p.Y0}
	}
	return nil
}
