package steppers

import "github.com/san-kum/numint/internal/ode"

// Trapezoidal is the explicit trapezoid rule: slopes at both endpoints,
// the far endpoint predicted with an Euler step, averaged directly. At
// this order the update coincides with Heun's; it is kept as its own
// method so the quadrature family is complete. Two evaluations, second
// order.
type Trapezoidal struct {
	k1, k2    ode.State
	predictor ode.State
	steps     uint64
}

func NewTrapezoidal() *Trapezoidal {
	return &Trapezoidal{}
}

func (tr *Trapezoidal) ensureScratch(n int) {
	if len(tr.k1) != n {
		tr.k1 = make(ode.State, n)
		tr.k2 = make(ode.State, n)
		tr.predictor = make(ode.State, n)
	}
}

func (tr *Trapezoidal) Step(sys ode.System, x ode.State, t, dt float64) ode.State {
	n := len(x)
	tr.ensureScratch(n)

	copy(tr.k1, sys.Derivative(x, t))

	for i := 0; i < n; i++ {
		tr.predictor[i] = x[i] + dt*tr.k1[i]
	}
	copy(tr.k2, sys.Derivative(tr.predictor, t+dt))

	result := make(ode.State, n)
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt*(tr.k1[i]+tr.k2[i])*0.5
	}

	tr.steps++
	return result
}

func (tr *Trapezoidal) Order() int    { return 2 }
func (tr *Trapezoidal) Steps() uint64 { return tr.steps }
func (tr *Trapezoidal) Reset()        { tr.steps = 0 }
