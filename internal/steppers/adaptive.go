package steppers

import (
	"fmt"
	"math"

	"github.com/san-kum/numint/internal/ode"
)

// Step-size controller constants.
const (
	safety    = 0.9
	maxGrowth = 5.0
	maxShrink = 0.1
)

// Options configure the adaptive controller.
type Options struct {
	// MinDelta and MaxDelta bound every controlled step.
	MinDelta float64
	MaxDelta float64

	// Tolerance is the acceptance threshold for the local error estimate.
	Tolerance float64

	// Iterations bounds the refinement passes that may follow the
	// initial trial within one StepAdaptive call.
	Iterations int

	// Formula selects the error normalization. Zero value is ErrorMixed.
	Formula ErrorFormula

	// FailOnTolerance turns an exhausted refinement budget into an error
	// instead of force-accepting the best trial.
	FailOnTolerance bool
}

func DefaultOptions() Options {
	return Options{
		MinDelta:   1e-8,
		MaxDelta:   1e-1,
		Tolerance:  1e-6,
		Iterations: 3,
		Formula:    ErrorMixed,
	}
}

// Adaptive wraps a fixed stepper with step-doubling error estimation and
// step-size control. Each controlled step compares one full step against
// two half steps of the wrapped method and commits the half-step result.
type Adaptive struct {
	inner ode.Stepper
	opts  Options

	delta  float64
	steps  uint64
	forced uint64
}

// NewAdaptive validates opts and wraps inner. The first proposed step
// size is MaxDelta.
func NewAdaptive(inner ode.Stepper, opts Options) (*Adaptive, error) {
	if opts.MinDelta <= 0 {
		return nil, fmt.Errorf("%w: min delta %g", ode.ErrInvalidDelta, opts.MinDelta)
	}
	if opts.MaxDelta < opts.MinDelta {
		return nil, fmt.Errorf("%w: min %g, max %g", ode.ErrInvalidBounds, opts.MinDelta, opts.MaxDelta)
	}
	if opts.Tolerance <= 0 {
		return nil, fmt.Errorf("%w: got %g", ode.ErrInvalidTolerance, opts.Tolerance)
	}
	if opts.Iterations < 0 {
		return nil, fmt.Errorf("iterations must be non-negative, got %d", opts.Iterations)
	}
	return &Adaptive{inner: inner, opts: opts, delta: opts.MaxDelta}, nil
}

// StepAdaptive advances from (x, t) by at most dt and returns the new
// state with the step size actually taken. Rejected trials shrink the
// step and retry up to Iterations times; after that the best trial is
// force-accepted unless FailOnTolerance is set. A requested dt at or
// below MinDelta is taken as is, so a driver can land exactly on its end
// time.
func (a *Adaptive) StepAdaptive(sys ode.System, x ode.State, t, dt float64) (ode.State, float64, error) {
	h := dt
	if h > a.opts.MaxDelta {
		h = a.opts.MaxDelta
	}

	var best ode.State
	bestH, bestErr := 0.0, math.Inf(1)

	for pass := 0; ; pass++ {
		half := h * 0.5
		xFull := a.inner.Step(sys, x, t, h)
		xMid := a.inner.Step(sys, x, t, half)
		xHalf := a.inner.Step(sys, xMid, t+half, half)

		if !xFull.IsValid() || !xHalf.IsValid() {
			return nil, 0, ode.ErrInvalidState
		}

		e := localError(a.opts.Formula, xFull, xHalf)

		if e <= a.opts.Tolerance {
			a.accept(h, e)
			return xHalf, h, nil
		}

		if e < bestErr {
			best, bestH, bestErr = xHalf, h, e
		}

		if h <= a.opts.MinDelta || pass >= a.opts.Iterations {
			if a.opts.FailOnTolerance {
				return nil, 0, fmt.Errorf("%w: error %.3e at delta %.3e",
					ode.ErrToleranceNotMet, bestErr, bestH)
			}
			a.forced++
			a.accept(bestH, bestErr)
			return best, bestH, nil
		}

		h = a.shrink(h, e)
	}
}

// accept records one accepted step and stores the next proposal, scaled
// by the standard controller factor and clamped to the configured bounds.
func (a *Adaptive) accept(h, e float64) {
	factor := maxGrowth
	if e > 0 {
		factor = safety * math.Pow(a.opts.Tolerance/e, 1.0/float64(a.inner.Order()+1))
		if factor > maxGrowth {
			factor = maxGrowth
		} else if factor < maxShrink {
			factor = maxShrink
		}
	}
	a.delta = a.clampDelta(h * factor)
	a.steps++
}

func (a *Adaptive) shrink(h, e float64) float64 {
	factor := safety * math.Pow(a.opts.Tolerance/e, 1.0/float64(a.inner.Order()+1))
	if factor < maxShrink {
		factor = maxShrink
	}
	h *= factor
	if h < a.opts.MinDelta {
		h = a.opts.MinDelta
	}
	return h
}

func (a *Adaptive) clampDelta(h float64) float64 {
	if h < a.opts.MinDelta {
		h = a.opts.MinDelta
	}
	if h > a.opts.MaxDelta {
		h = a.opts.MaxDelta
	}
	return h
}

// Step advances by exactly dt with no error control, using the paired
// half steps the controller commits on acceptance.
func (a *Adaptive) Step(sys ode.System, x ode.State, t, dt float64) ode.State {
	half := dt * 0.5
	xMid := a.inner.Step(sys, x, t, half)
	result := a.inner.Step(sys, xMid, t+half, half)
	a.steps++
	return result
}

func (a *Adaptive) Order() int { return a.inner.Order() }

// Steps counts accepted steps only. The wrapped stepper's own counter
// tracks sub-steps across all trials, including rejected ones.
func (a *Adaptive) Steps() uint64 { return a.steps }

// Forced counts accepted steps whose error estimate still exceeded
// Tolerance when MinDelta or the refinement budget was hit.
func (a *Adaptive) Forced() uint64 { return a.forced }

// Delta is the controller's proposal for the next step size.
func (a *Adaptive) Delta() float64 { return a.delta }

// Inner returns the wrapped fixed stepper.
func (a *Adaptive) Inner() ode.Stepper { return a.inner }

func (a *Adaptive) Reset() {
	a.steps = 0
	a.forced = 0
	a.delta = a.opts.MaxDelta
	a.inner.Reset()
}
