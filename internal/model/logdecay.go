package model

import "math"

// LogDecay is the reference problem y' = -y + ln(x). The logarithm restricts
// the domain to x > 0.
type LogDecay struct{}

func NewLogDecay() *LogDecay {
	return &LogDecay{}
}

func (m *LogDecay) Name() string { return "logdecay" }

func (m *LogDecay) Eval(x, y float64) float64 {
	return -y + math.Log(x)
}

func (m *LogDecay) InDomain(x float64) bool {
	return x > 0
}
