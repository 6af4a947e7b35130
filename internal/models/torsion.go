package models

import "github.com/san-kum/numint/internal/ode"

// TorsionPendulum is a rod swinging about a pivot under a step torque
// input, with the gravitational restoring torque linearized about the
// hanging position.
//
//	x[0] : angle
//	x[1] : angular velocity
type TorsionPendulum struct {
	// RodMass [kg].
	RodMass float64
	// RodLength [m].
	RodLength float64
	// Rotational damping [N.m.s].
	Damping float64
	// Gravity [m/s^2].
	Gravity float64
	// Torque applied while t < TorqueUntil [N.m].
	Torque      float64
	TorqueUntil float64
}

func NewTorsionPendulum() *TorsionPendulum {
	return &TorsionPendulum{
		RodMass:     3.0,
		RodLength:   0.19,
		Damping:     0.1,
		Gravity:     9.81,
		Torque:      5.0,
		TorqueUntil: 3.0,
	}
}

func (p *TorsionPendulum) Name() string       { return "torsion" }
func (p *TorsionPendulum) Dim() int           { return 2 }
func (p *TorsionPendulum) Initial() ode.State { return ode.State{0.0, 0.0} }

func (p *TorsionPendulum) Derivative(x ode.State, t float64) ode.State {
	u := 0.0
	if t < p.TorqueUntil {
		u = p.Torque
	}

	// Rod inertia about its center plus the point-mass term at the pivot.
	ml2 := p.RodMass * p.RodLength * p.RodLength
	inertia := (4.0/3.0)*ml2 + ml2

	return ode.State{
		x[1],
		(u - p.RodMass*p.Gravity*p.RodLength*x[0] - p.Damping*x[1]) / inertia,
	}
}
