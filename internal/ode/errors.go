package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration runs.
var (
	// ErrDomain indicates the right-hand side was evaluated outside its
	// valid domain, or returned NaN/Inf.
	ErrDomain = errors.New("ode: right-hand side evaluated outside its domain")

	// ErrConfig indicates invalid integration parameters.
	ErrConfig = errors.New("ode: invalid configuration")

	// ErrStepTooSmall indicates the adaptive step fell below the minimum.
	ErrStepTooSmall = errors.New("ode: adaptive step below minimum")
)

// DomainError reports the first invalid right-hand-side evaluation. The
// integration aborts immediately; no trajectory is returned alongside it.
type DomainError struct {
	Step  int     // step index at which the evaluation happened
	X     float64 // evaluation abscissa (may be a stage midpoint)
	Y     float64 // state passed to the right-hand side
	Value float64 // the offending result (NaN or Inf)
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("step %d: f(%g, %g) = %g is not finite", e.Step, e.X, e.Y, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// ConfigError reports a rejected integration parameter.
type ConfigError struct {
	Field  string
	Reason string
	Value  float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s (got %g)", e.Field, e.Reason, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }
