package model

import (
	"fmt"
	"sort"
)

// Model is a scalar right-hand side dy/dx = f(x, y).
type Model interface {
	Name() string
	Eval(x, y float64) float64
}

// DomainLimited is implemented by models whose right-hand side is only
// defined on part of the real line.
type DomainLimited interface {
	InDomain(x float64) bool
}

// ExactSolution is implemented by models with a known closed-form solution
// for a given initial condition. Used by tests and the convergence study.
type ExactSolution interface {
	Exact(x0, y0, x float64) float64
}

var registry = map[string]func() Model{
	"logdecay": func() Model { return NewLogDecay() },
	"decay":    func() Model { return NewDecay(1.0) },
	"logistic": func() Model { return NewLogistic(1.0) },
}

// Lookup returns a fresh instance of a registered model.
func Lookup(name string) (Model, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

// Names lists the registered models in stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
