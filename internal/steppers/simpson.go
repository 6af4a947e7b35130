package steppers

import "github.com/san-kum/numint/internal/ode"

// Simpson is Kutta's third-order method: three slopes combined with the
// 1-4-1 Simpson quadrature weights. The last stage extrapolates through
// the midpoint slope to the far endpoint. Three evaluations, third order.
type Simpson struct {
	k1, k2, k3 ode.State
	scratch    ode.State
	steps      uint64
}

func NewSimpson() *Simpson {
	return &Simpson{}
}

func (s *Simpson) ensureScratch(n int) {
	if len(s.k1) != n {
		s.k1 = make(ode.State, n)
		s.k2 = make(ode.State, n)
		s.k3 = make(ode.State, n)
		s.scratch = make(ode.State, n)
	}
}

func (s *Simpson) Step(sys ode.System, x ode.State, t, dt float64) ode.State {
	n := len(x)
	s.ensureScratch(n)

	copy(s.k1, sys.Derivative(x, t))

	for i := 0; i < n; i++ {
		s.scratch[i] = x[i] + dt*0.5*s.k1[i]
	}
	copy(s.k2, sys.Derivative(s.scratch, t+dt*0.5))

	for i := 0; i < n; i++ {
		s.scratch[i] = x[i] + dt*(2*s.k2[i]-s.k1[i])
	}
	copy(s.k3, sys.Derivative(s.scratch, t+dt))

	result := make(ode.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(s.k1[i]+4*s.k2[i]+s.k3[i])
	}

	s.steps++
	return result
}

func (s *Simpson) Order() int    { return 3 }
func (s *Simpson) Steps() uint64 { return s.steps }
func (s *Simpson) Reset()        { s.steps = 0 }
