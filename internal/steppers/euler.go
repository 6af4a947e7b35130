package steppers

import "github.com/san-kum/numint/internal/ode"

// Euler is the forward Euler method: one evaluation, first order.
type Euler struct {
	steps uint64
}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys ode.System, x ode.State, t, dt float64) ode.State {
	dx := sys.Derivative(x, t)
	result := make(ode.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	e.steps++
	return result
}

func (e *Euler) Order() int    { return 1 }
func (e *Euler) Steps() uint64 { return e.steps }
func (e *Euler) Reset()        { e.steps = 0 }
