package models

import (
	"math"

	"github.com/san-kum/numint/internal/ode"
)

// Pendulum is a point mass on a rigid rod, fully nonlinear in the angle.
//
//	x[0] : angle from the hanging position
//	x[1] : angular velocity
type Pendulum struct {
	// Mass [kg].
	Mass float64
	// Length [m].
	Length float64
	// Rotational damping [N.m.s].
	Damping float64
	// Gravity [m/s^2].
	Gravity float64
}

func NewPendulum() *Pendulum {
	return &Pendulum{
		Mass:    1.0,
		Length:  1.0,
		Damping: 0.1,
		Gravity: 9.81,
	}
}

func (p *Pendulum) Name() string       { return "pendulum" }
func (p *Pendulum) Dim() int           { return 2 }
func (p *Pendulum) Initial() ode.State { return ode.State{math.Pi / 3, 0.0} }

func (p *Pendulum) Derivative(x ode.State, t float64) ode.State {
	theta, omega := x[0], x[1]
	alpha := (-p.Damping*omega - p.Mass*p.Gravity*p.Length*math.Sin(theta)) /
		(p.Mass * p.Length * p.Length)
	return ode.State{omega, alpha}
}

// Energy is kinetic plus potential, zero at the hanging rest position.
// Conserved when Damping is zero.
func (p *Pendulum) Energy(x ode.State) float64 {
	theta, omega := x[0], x[1]
	ke := 0.5 * p.Mass * p.Length * p.Length * omega * omega
	pe := p.Mass * p.Gravity * p.Length * (1 - math.Cos(theta))
	return ke + pe
}
