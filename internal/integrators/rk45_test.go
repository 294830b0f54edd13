package integrators

import (
	"math"
	"testing"
)

func TestRK45FixedStepAccuracy(t *testing.T) {
	integ := NewRK45()

	y := integrate(integ, decay, 0, 1.0, 0.01, 100)
	expected := math.Exp(-1.0)

	if math.Abs(y-expected) > 1e-10 {
		t.Errorf("error too large: got %.12f, expected %.12f", y, expected)
	}
}

func TestRK45BeatsRK4(t *testing.T) {
	rk4 := NewRK4()
	rk45 := NewRK45()
	exact := math.Exp(-2.0)

	e4 := math.Abs(integrate(rk4, decay, 0, 1.0, 0.1, 20) - exact)
	e45 := math.Abs(integrate(rk45, decay, 0, 1.0, 0.1, 20) - exact)

	if e45 > e4 {
		t.Errorf("5th-order solution should beat rk4 at equal h: rk45 %.3e vs rk4 %.3e", e45, e4)
	}
}

func TestRK45StepAdaptive(t *testing.T) {
	integ := NewRK45()

	yNew, errRatio, hNext := integ.StepAdaptive(decay, 0, 1.0, 0.1, 1e-8)

	if math.IsNaN(yNew) || math.IsInf(yNew, 0) {
		t.Fatal("StepAdaptive produced non-finite state")
	}
	if hNext <= 0 {
		t.Errorf("suggested step must be positive, got %g", hNext)
	}
	if errRatio < 0 {
		t.Errorf("error ratio must be non-negative, got %g", errRatio)
	}
}

func TestRK45StepControl(t *testing.T) {
	integ := NewRK45()

	// A loose tolerance should suggest growing the step, a tight one
	// should suggest shrinking it.
	_, looseRatio, looseNext := integ.StepAdaptive(decay, 0, 1.0, 0.1, 1e-2)
	_, tightRatio, tightNext := integ.StepAdaptive(decay, 0, 1.0, 0.1, 1e-14)

	if looseRatio > 1 {
		t.Errorf("loose tolerance should accept h=0.1, got ratio %g", looseRatio)
	}
	if looseNext <= 0.1 {
		t.Errorf("loose tolerance should grow the step, got %g", looseNext)
	}
	if tightRatio <= 1 {
		t.Errorf("1e-14 tolerance should reject h=0.1, got ratio %g", tightRatio)
	}
	if tightNext >= 0.1 {
		t.Errorf("rejection should shrink the step, got %g", tightNext)
	}
}
