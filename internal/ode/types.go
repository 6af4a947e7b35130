package ode

import "math"

// State is a fixed-dimension vector of real components. The dimension is
// set by the caller and must stay constant for the lifetime of a run; the
// arithmetic helpers assume both operands share it.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] + other[i]
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] - other[i]
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// System is the right-hand side of dx/dt = f(x, t). Implementations must be
// pure: no mutation of x, no side effects visible to the engine. A stepper
// evaluates the system one to four times per step depending on its order.
type System interface {
	Derivative(x State, t float64) State
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(x State, t float64) State

func (f SystemFunc) Derivative(x State, t float64) State { return f(x, t) }

// Hamiltonian is implemented by systems that expose a total-energy
// functional, used by the energy metrics.
type Hamiltonian interface {
	Energy(x State) float64
}

// Stepper advances a state by one time increment of exactly dt. Step never
// fails; accuracy is the caller's concern via dt. Steppers own scratch
// buffers and a step counter and are not safe for concurrent use.
type Stepper interface {
	Step(sys System, x State, t, dt float64) State

	// Order is the method's order of accuracy p; the one-step error
	// shrinks as O(dt^(p+1)).
	Order() int

	// Steps is the number of steps taken since construction or the last
	// Reset. For a plain stepper wrapped by a controller this counts
	// sub-steps, including rejected trials.
	Steps() uint64

	Reset()
}

// AdaptiveStepper is a stepper with internal step-size control.
type AdaptiveStepper interface {
	Stepper

	// StepAdaptive advances from (x, t) by a step no larger than dt,
	// shrinking until the local error estimate meets tolerance. It
	// returns the new state and the step size actually taken.
	StepAdaptive(sys System, x State, t, dt float64) (State, float64, error)

	// Delta is the controller's proposal for the next step size.
	Delta() float64
}

// Observer receives every accepted sample of a run, starting with the
// initial state, in strictly increasing time order.
type Observer interface {
	Observe(x State, t float64)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(x State, t float64)

func (f ObserverFunc) Observe(x State, t float64) { f(x, t) }
