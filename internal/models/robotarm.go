package models

import (
	"math"

	"github.com/san-kum/numint/internal/ode"
)

// RobotArm is a flexible-joint robot arm driven by a constant motor
// torque, with Stribeck friction in the gear train.
//
//	x[0] : twist between motor and gear-box
//	x[1] : twist between gear-box and arm
//	x[2] : motor velocity
//	x[3] : gear-box velocity
//	x[4] : arm velocity
type RobotArm struct {
	// Friction: viscous, Coulomb, Stribeck level, Stribeck and friction
	// smoothness.
	Fv, Fc, Fcs float64
	Alpha, Beta float64
	// Total inertia with motor and gear-box share factors.
	J, Am, Ag float64
	// Gear-box stiffness (linear, cubic) and damping.
	Kg1, Kg3, Dg float64
	// Arm structure stiffness and damping.
	Ka, Da float64
	// Motor input torque.
	U float64
}

func NewRobotArm() *RobotArm {
	return &RobotArm{
		Fv:    0.00986346744839,
		Fc:    0.74302635727901,
		Fcs:   3.98628540790595,
		Alpha: 3.24015074090438,
		Beta:  0.79943497008153,
		J:     0.03291699877416,
		Am:    0.17910964111956,
		Ag:    0.61206166914114,
		Kg1:   20.59269827430799,
		Kg3:   0.0,
		Dg:    0.06241814047290,
		Ka:    20.23072060978318,
		Da:    0.00987527995798,
		U:     1.0,
	}
}

func (r *RobotArm) Name() string       { return "robotarm" }
func (r *RobotArm) Dim() int           { return 5 }
func (r *RobotArm) Initial() ode.State { return make(ode.State, 5) }

func (r *RobotArm) Derivative(x ode.State, t float64) ode.State {
	// tauf: gear friction torque; taus: gear spring torque.
	tauf := r.Fv*x[2] + (r.Fc+r.Fcs/math.Cosh(r.Alpha*x[2]))*math.Tanh(r.Beta*x[2])
	taus := r.Kg1*x[0] + r.Kg3*x[0]*x[0]*x[0]

	return ode.State{
		x[2] - x[3],
		x[3] - x[4],
		(-taus - r.Dg*(x[2]-x[3]) - tauf + r.U) / (r.J * r.Am),
		(taus + r.Dg*(x[2]-x[3]) - r.Ka*x[1] - r.Da*(x[3]-x[4])) / (r.J * r.Ag),
		(r.Ka*x[1] + r.Da*(x[3]-x[4])) / (r.J * (1.0 - r.Am - r.Ag)),
	}
}
