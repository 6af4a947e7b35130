package steppers

import "github.com/san-kum/numint/internal/ode"

// Heun is the improved Euler method: an Euler predictor followed by an
// averaged-slope corrector. Two evaluations, second order.
type Heun struct {
	k1, k2  ode.State
	scratch ode.State
	steps   uint64
}

func NewHeun() *Heun {
	return &Heun{}
}

func (h *Heun) ensureScratch(n int) {
	if len(h.k1) != n {
		h.k1 = make(ode.State, n)
		h.k2 = make(ode.State, n)
		h.scratch = make(ode.State, n)
	}
}

func (h *Heun) Step(sys ode.System, x ode.State, t, dt float64) ode.State {
	n := len(x)
	h.ensureScratch(n)

	copy(h.k1, sys.Derivative(x, t))

	for i := 0; i < n; i++ {
		h.scratch[i] = x[i] + dt*h.k1[i]
	}
	copy(h.k2, sys.Derivative(h.scratch, t+dt))

	result := make(ode.State, n)
	dt2 := dt * 0.5
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt2*(h.k1[i]+h.k2[i])
	}

	h.steps++
	return result
}

func (h *Heun) Order() int    { return 2 }
func (h *Heun) Steps() uint64 { return h.steps }
func (h *Heun) Reset()        { h.steps = 0 }
