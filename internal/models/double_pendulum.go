package models

import (
	"math"

	"github.com/san-kum/numint/internal/ode"
)

// DoublePendulum is two point masses on rigid links, the standard
// chaotic benchmark. Sensitive dependence on the initial angles makes it
// a stress case for step-size control.
//
//	x[0] : upper angle
//	x[1] : lower angle
//	x[2] : upper angular velocity
//	x[3] : lower angular velocity
type DoublePendulum struct {
	M1, M2  float64
	L1, L2  float64
	Gravity float64
}

func NewDoublePendulum() *DoublePendulum {
	return &DoublePendulum{
		M1: 1.0, M2: 1.0,
		L1: 1.0, L2: 1.0,
		Gravity: 9.81,
	}
}

func (d *DoublePendulum) Name() string       { return "doublependulum" }
func (d *DoublePendulum) Dim() int           { return 4 }
func (d *DoublePendulum) Initial() ode.State { return ode.State{math.Pi / 2, math.Pi / 2, 0.0, 0.0} }

func (d *DoublePendulum) Derivative(x ode.State, t float64) ode.State {
	theta1, theta2, omega1, omega2 := x[0], x[1], x[2], x[3]
	m1, m2, l1, l2, g := d.M1, d.M2, d.L1, d.L2, d.Gravity

	delta := theta2 - theta1
	sinD, cosD := math.Sin(delta), math.Cos(delta)

	den1 := (m1+m2)*l1 - m2*l1*cosD*cosD
	den2 := (l2 / l1) * den1

	alpha1 := (m2*l1*omega1*omega1*sinD*cosD +
		m2*g*math.Sin(theta2)*cosD +
		m2*l2*omega2*omega2*sinD -
		(m1+m2)*g*math.Sin(theta1)) / den1

	alpha2 := (-m2*l2*omega2*omega2*sinD*cosD +
		(m1+m2)*g*math.Sin(theta1)*cosD -
		(m1+m2)*l1*omega1*omega1*sinD -
		(m1+m2)*g*math.Sin(theta2)) / den2

	return ode.State{omega1, omega2, alpha1, alpha2}
}

// Energy is the total mechanical energy. The system is conservative, so
// drift in this quantity measures integration error directly.
func (d *DoublePendulum) Energy(x ode.State) float64 {
	theta1, theta2, omega1, omega2 := x[0], x[1], x[2], x[3]
	m1, m2, l1, l2, g := d.M1, d.M2, d.L1, d.L2, d.Gravity

	v1sq := l1 * l1 * omega1 * omega1
	v2sq := l1*l1*omega1*omega1 + l2*l2*omega2*omega2 +
		2*l1*l2*omega1*omega2*math.Cos(theta1-theta2)

	ke := 0.5*m1*v1sq + 0.5*m2*v2sq
	y1 := -l1 * math.Cos(theta1)
	y2 := y1 - l2*math.Cos(theta2)
	pe := m1*g*y1 + m2*g*y2

	return ke + pe
}
