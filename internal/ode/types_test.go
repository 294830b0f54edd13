package ode

import (
	"errors"
	"math"
	"testing"
)

func TestProblemValidate(t *testing.T) {
	f := func(x, y float64) float64 { return -y }

	valid := Problem{F: f, X0: 0, Y0: 1, XEnd: 1, Steps: 10}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid problem rejected: %v", err)
	}

	tests := []struct {
		name string
		p    Problem
	}{
		{"nil rhs", Problem{X0: 0, Y0: 1, XEnd: 1, Steps: 10}},
		{"negative steps", Problem{F: f, X0: 0, Y0: 1, XEnd: 1, Steps: -1}},
		{"reversed interval", Problem{F: f, X0: 1, Y0: 1, XEnd: 0, Steps: 10}},
		{"empty interval", Problem{F: f, X0: 1, Y0: 1, XEnd: 1, Steps: 10}},
		{"nan initial value", Problem{F: f, X0: 0, Y0: math.NaN(), XEnd: 1, Steps: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
		})
	}
}

func TestProblemValidateZeroSteps(t *testing.T) {
	// Steps == 0 is the degenerate single-sample case and must not error,
	// even with an empty interval.
	p := Problem{F: func(x, y float64) float64 { return -y }, X0: 1, Y0: 1, XEnd: 1, Steps: 0}
	if err := p.Validate(); err != nil {
		t.Fatalf("zero steps rejected: %v", err)
	}
	if p.H() != 0 {
		t.Errorf("expected h=0 for zero steps, got %g", p.H())
	}
}

func TestProblemH(t *testing.T) {
	p := Problem{X0: 1, XEnd: 10, Steps: 1000}
	if got, want := p.H(), 0.009; math.Abs(got-want) > 1e-15 {
		t.Errorf("h = %g, want %g", got, want)
	}
}

func TestTrajectoryHelpers(t *testing.T) {
	tr := NewTrajectory(2)
	tr.Append(0, 1)
	tr.Append(0.5, 2)
	tr.Append(1, 3)

	if tr.Len() != 3 {
		t.Fatalf("len = %d, want 3", tr.Len())
	}

	x, y := tr.Final()
	if x != 1 || y != 3 {
		t.Errorf("final = (%g, %g), want (1, 3)", x, y)
	}

	c := tr.Clone()
	c.Ys[0] = 99
	if tr.Ys[0] != 1 {
		t.Error("clone shares backing storage with original")
	}

	if !tr.IsValid() {
		t.Error("finite trajectory reported invalid")
	}
	tr.Append(1.5, math.NaN())
	if tr.IsValid() {
		t.Error("NaN sample not detected")
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	var err error = &DomainError{Step: 3, X: -0.5, Y: 1, Value: math.NaN()}
	if !errors.Is(err, ErrDomain) {
		t.Error("DomainError should unwrap to ErrDomain")
	}

	var de *DomainError
	if !errors.As(err, &de) || de.Step != 3 {
		t.Error("DomainError fields not preserved through errors.As")
	}
}
