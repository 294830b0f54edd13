package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/model"
	"github.com/san-kum/odelab/internal/ode"
)

func TestAdaptiveCoversInterval(t *testing.T) {
	p := logDecayProblem(1, 10, 0)
	cfg := DefaultAdaptiveConfig()

	tr, stats, err := Adaptive(p, cfg, integrators.NewRK45())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if tr.Xs[0] != p.X0 {
		t.Errorf("first abscissa %g, want %g", tr.Xs[0], p.X0)
	}
	if x, _ := tr.Final(); x != p.XEnd {
		t.Errorf("last abscissa %g must land exactly on %g", x, p.XEnd)
	}
	if stats.Steps != tr.Len()-1 {
		t.Errorf("stats.Steps = %d, trajectory has %d steps", stats.Steps, tr.Len()-1)
	}
	if stats.Evals == 0 {
		t.Error("expected rhs evaluations to be counted")
	}

	for i := 1; i < tr.Len(); i++ {
		if tr.Xs[i] <= tr.Xs[i-1] {
			t.Fatalf("grid not strictly increasing at %d", i)
		}
	}
}

func TestAdaptiveAccuracy(t *testing.T) {
	m := model.NewDecay(1.0)
	p := ode.Problem{F: m.Eval, X0: 0, Y0: 1, XEnd: 2}

	cfg := DefaultAdaptiveConfig()
	cfg.Tol = 1e-8

	tr, _, err := Adaptive(p, cfg, integrators.NewRK45())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	x, y := tr.Final()
	if diff := math.Abs(y - m.Exact(0, 1, x)); diff > 1e-6 {
		t.Errorf("global error %.3e exceeds 1e-6", diff)
	}
}

func TestAdaptiveTighterToleranceTakesMoreSteps(t *testing.T) {
	p := logDecayProblem(1, 10, 0)

	loose := DefaultAdaptiveConfig()
	loose.Tol = 1e-4
	tight := DefaultAdaptiveConfig()
	tight.Tol = 1e-10

	_, looseStats, err := Adaptive(p, loose, integrators.NewRK45())
	if err != nil {
		t.Fatalf("loose run failed: %v", err)
	}
	_, tightStats, err := Adaptive(p, tight, integrators.NewRK45())
	if err != nil {
		t.Fatalf("tight run failed: %v", err)
	}

	if tightStats.Steps <= looseStats.Steps {
		t.Errorf("tightening the tolerance should add steps: %d vs %d",
			tightStats.Steps, looseStats.Steps)
	}
}

func TestAdaptiveMaxStepHonored(t *testing.T) {
	p := logDecayProblem(1, 10, 0)
	cfg := DefaultAdaptiveConfig()
	cfg.HMax = 0.009

	tr, _, err := Adaptive(p, cfg, integrators.NewRK45())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i := 1; i < tr.Len(); i++ {
		if h := tr.Xs[i] - tr.Xs[i-1]; h > cfg.HMax+1e-12 {
			t.Fatalf("step %d width %g exceeds cap %g", i, h, cfg.HMax)
		}
	}
}

func TestAdaptiveDomainViolation(t *testing.T) {
	p := logDecayProblem(-1, 1, 0)
	cfg := DefaultAdaptiveConfig()

	_, _, err := Adaptive(p, cfg, integrators.NewRK45())
	if err == nil {
		t.Fatal("expected DomainError, got nil")
	}
	if !errors.Is(err, ode.ErrDomain) {
		t.Errorf("expected ErrDomain, got %v", err)
	}
}

func TestAdaptiveInvalidConfig(t *testing.T) {
	p := logDecayProblem(1, 10, 0)

	badTol := DefaultAdaptiveConfig()
	badTol.Tol = 0
	if _, _, err := Adaptive(p, badTol, integrators.NewRK45()); !errors.Is(err, ode.ErrConfig) {
		t.Errorf("zero tolerance should be rejected, got %v", err)
	}

	reversed := logDecayProblem(1, 10, 0)
	reversed.XEnd = 0.5
	if _, _, err := Adaptive(reversed, DefaultAdaptiveConfig(), integrators.NewRK45()); !errors.Is(err, ode.ErrConfig) {
		t.Errorf("reversed interval should be rejected, got %v", err)
	}
}
