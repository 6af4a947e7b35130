// Package ode defines the primitives shared by every part of the
// integration engine.
//
// The package provides the contract types for numerical integration of
// ordinary differential equations:
//
//   - [State]: fixed-dimension vector representing the system state
//   - [System]: right-hand side of dx/dt = f(x, t)
//   - [Stepper]: explicit single-step integration method
//   - [AdaptiveStepper]: stepper with built-in step-size control
//   - [Observer]: per-sample trajectory callback
//
// # Example
//
//	sys := models.NewSpringMassDamper()
//	rec := observe.NewRecorder()
//	final, n, err := solver.IntegrateFixed(steppers.NewRK4(), sys, sys.Initial(), 0, 10, 1e-3, rec)
//
// # Thread Safety
//
// Steppers carry scratch buffers and step counters and are NOT safe for
// concurrent use. Give each integration run its own stepper instance.
package ode
