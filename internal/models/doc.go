// Package models provides the benchmark systems integrated by the engine.
//
// Each model implements [ode.System] together with a name, a dimension
// and a default initial state:
//
//   - [SpringMassDamper]: underdamped linear oscillator
//   - [TorsionPendulum]: rod under a step torque input
//   - [RobotArm]: flexible-joint arm with Stribeck friction
//   - [Exponential]: scalar decay with a closed-form solution
//   - [Pendulum]: fully nonlinear damped pendulum
//   - [DoublePendulum]: chaotic two-link benchmark
//   - [ThreeBody]: planar gravity on the figure-eight orbit
//
// Models with a meaningful energy functional also implement
// [ode.Hamiltonian]:
//
//	var sys ode.System = models.NewSpringMassDamper()
//	if h, ok := sys.(ode.Hamiltonian); ok {
//	    energy := h.Energy(state)
//	}
package models
