package solver

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
)

// AdaptiveConfig tunes the accept/reject step controller.
type AdaptiveConfig struct {
	Tol   float64 // per-step error tolerance
	HInit float64 // first trial step; 0 picks (xEnd-x0)/100
	HMin  float64 // below this the run aborts with ErrStepTooSmall
	HMax  float64 // cap on the accepted step size; 0 means uncapped
}

func DefaultAdaptiveConfig() AdaptiveConfig {
	return AdaptiveConfig{
		Tol:  1e-6,
		HMin: 1e-10,
	}
}

// Stats summarizes an adaptive run.
type Stats struct {
	Steps    int // accepted steps
	Rejected int // trial steps discarded by the controller
	Evals    int // right-hand-side evaluations
}

// Adaptive integrates the problem with the embedded pair's own step control.
// The produced grid is non-uniform; the final step is clamped so the last
// sample lands exactly on xEnd. Problem.Steps is ignored.
func Adaptive(p ode.Problem, cfg AdaptiveConfig, s integrators.AdaptiveStepper) (*ode.Trajectory, Stats, error) {
	var stats Stats

	if p.F == nil {
		return nil, stats, &ode.ConfigError{Field: "f", Reason: "right-hand side is nil"}
	}
	if p.XEnd <= p.X0 {
		return nil, stats, &ode.ConfigError{Field: "xend", Reason: "interval end must exceed interval start", Value: p.XEnd}
	}
	if cfg.Tol <= 0 {
		return nil, stats, &ode.ConfigError{Field: "tol", Reason: "tolerance must be positive", Value: cfg.Tol}
	}

	var bad *ode.DomainError
	step := 0
	f := func(x, y float64) float64 {
		stats.Evals++
		v := p.F(x, y)
		if bad == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			bad = &ode.DomainError{Step: step, X: x, Y: y, Value: v}
		}
		return v
	}

	h := cfg.HInit
	if h <= 0 {
		h = (p.XEnd - p.X0) / 100
	}
	if cfg.HMax > 0 && h > cfg.HMax {
		h = cfg.HMax
	}

	tr := ode.NewTrajectory(128)
	tr.Append(p.X0, p.Y0)

	x, y := p.X0, p.Y0
	for x < p.XEnd {
		step = stats.Steps
		lastStep := false
		if h >= p.XEnd-x {
			h = p.XEnd - x
			lastStep = true
		}

		yNew, errRatio, hNext := s.StepAdaptive(f, x, y, h, cfg.Tol)
		if bad != nil {
			return nil, stats, bad
		}

		if errRatio > 1 {
			stats.Rejected++
			if hNext < cfg.HMin {
				return nil, stats, fmt.Errorf("%w: h=%g at x=%g", ode.ErrStepTooSmall, hNext, x)
			}
			h = hNext
			continue
		}

		if lastStep {
			x = p.XEnd
		} else {
			x += h
		}
		y = yNew
		tr.Append(x, y)
		stats.Steps++

		h = hNext
		if cfg.HMax > 0 && h > cfg.HMax {
			h = cfg.HMax
		}
	}

	return tr, stats, nil
}
