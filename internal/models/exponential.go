package models

import (
	"math"

	"github.com/san-kum/numint/internal/ode"
)

// Exponential is the scalar decay dx/dt = -Rate*x, kept in the catalog
// for accuracy checks against its closed-form solution.
type Exponential struct {
	Rate float64
}

func NewExponential() *Exponential {
	return &Exponential{Rate: 1.0}
}

func (e *Exponential) Name() string       { return "exponential" }
func (e *Exponential) Dim() int           { return 1 }
func (e *Exponential) Initial() ode.State { return ode.State{1.0} }

func (e *Exponential) Derivative(x ode.State, t float64) ode.State {
	return ode.State{-e.Rate * x[0]}
}

// Analytic evaluates the exact solution from Initial() at t.
func (e *Exponential) Analytic(t float64) float64 {
	return e.Initial()[0] * math.Exp(-e.Rate*t)
}
