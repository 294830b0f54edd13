package model

import "math"

// Decay is exponential decay y' = -k*y with exact solution
// y(x) = y0 * exp(-k*(x-x0)).
type Decay struct {
	K float64
}

func NewDecay(k float64) *Decay {
	return &Decay{K: k}
}

func (m *Decay) Name() string { return "decay" }

func (m *Decay) Eval(x, y float64) float64 {
	return -m.K * y
}

func (m *Decay) Exact(x0, y0, x float64) float64 {
	return y0 * math.Exp(-m.K*(x-x0))
}
