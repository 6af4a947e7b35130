package steppers

import "github.com/san-kum/numint/internal/ode"

// Midpoint evaluates the slope at the half step and advances the full step
// with it. Two evaluations, second order.
type Midpoint struct {
	k1, k2  ode.State
	scratch ode.State
	steps   uint64
}

func NewMidpoint() *Midpoint {
	return &Midpoint{}
}

func (m *Midpoint) ensureScratch(n int) {
	if len(m.k1) != n {
		m.k1 = make(ode.State, n)
		m.k2 = make(ode.State, n)
		m.scratch = make(ode.State, n)
	}
}

func (m *Midpoint) Step(sys ode.System, x ode.State, t, dt float64) ode.State {
	n := len(x)
	m.ensureScratch(n)

	copy(m.k1, sys.Derivative(x, t))

	for i := 0; i < n; i++ {
		m.scratch[i] = x[i] + dt*0.5*m.k1[i]
	}
	copy(m.k2, sys.Derivative(m.scratch, t+dt*0.5))

	result := make(ode.State, n)
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt*m.k2[i]
	}

	m.steps++
	return result
}

func (m *Midpoint) Order() int    { return 2 }
func (m *Midpoint) Steps() uint64 { return m.steps }
func (m *Midpoint) Reset()        { m.steps = 0 }
