package models

import (
	"math"

	"github.com/san-kum/numint/internal/ode"
)

// SpringMassDamper is a mass on a damped linear spring.
//
//	x[0] : position
//	x[1] : velocity
type SpringMassDamper struct {
	// Mass [kg].
	Mass float64
	// Damping constant [N.s/m].
	Damping float64
	// Spring stiffness [N/m].
	Stiffness float64
}

func NewSpringMassDamper() *SpringMassDamper {
	return &SpringMassDamper{
		Mass:      4.0,
		Damping:   1.0,
		Stiffness: 2.0,
	}
}

func (s *SpringMassDamper) Name() string       { return "springmass" }
func (s *SpringMassDamper) Dim() int           { return 2 }
func (s *SpringMassDamper) Initial() ode.State { return ode.State{1.0, 0.0} }

func (s *SpringMassDamper) Derivative(x ode.State, t float64) ode.State {
	return ode.State{
		x[1],
		-(s.Damping*x[1] + s.Stiffness*x[0]) / s.Mass,
	}
}

// Energy is the kinetic plus elastic energy; damping makes it decay.
func (s *SpringMassDamper) Energy(x ode.State) float64 {
	return 0.5*s.Mass*x[1]*x[1] + 0.5*s.Stiffness*x[0]*x[0]
}

// Analytic evaluates the closed-form solution at t, starting from
// Initial(). Valid for the underdamped regime
// (Damping^2 < 4*Mass*Stiffness), which the defaults satisfy.
func (s *SpringMassDamper) Analytic(t float64) (pos, vel float64) {
	sigma := s.Damping / (2 * s.Mass)
	omega2 := s.Stiffness / s.Mass
	omegaD := math.Sqrt(omega2 - sigma*sigma)

	x0 := s.Initial()
	a := x0[0]
	b := (x0[1] + sigma*x0[0]) / omegaD

	decay := math.Exp(-sigma * t)
	cos, sin := math.Cos(omegaD*t), math.Sin(omegaD*t)

	pos = decay * (a*cos + b*sin)
	vel = decay * ((omegaD*b-sigma*a)*cos - (omegaD*a+sigma*b)*sin)
	return pos, vel
}
