package model

import "math"

// Logistic is the logistic growth equation y' = r*y*(1-y). For y0 != 0 the
// exact solution is y(x) = 1 / (1 + (1/y0 - 1) * exp(-r*(x-x0))).
type Logistic struct {
	R float64
}

func NewLogistic(r float64) *Logistic {
	return &Logistic{R: r}
}

func (m *Logistic) Name() string { return "logistic" }

func (m *Logistic) Eval(x, y float64) float64 {
	return m.R * y * (1 - y)
}

func (m *Logistic) Exact(x0, y0, x float64) float64 {
	if y0 == 0 {
		return 0
	}
	return 1 / (1 + (1/y0-1)*math.Exp(-m.R*(x-x0)))
}
