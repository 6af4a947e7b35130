// Package solver provides the driver loops that advance a system across a
// time span, feeding every accepted sample to an observer.
package solver

import (
	"fmt"
	"math"

	"github.com/san-kum/numint/internal/ode"
)

// Fractional remainders below this share of a step count as exact
// multiples when sizing a fixed-step run.
const spanGuard = 1e-9

// IntegrateFixed advances x0 from t0 to t1 in constant steps of dt. The
// observer sees the initial state and every step thereafter; the final
// step is clamped to land exactly on t1. Returns the final state and the
// number of accepted steps.
func IntegrateFixed(st ode.Stepper, sys ode.System, x0 ode.State, t0, t1, dt float64, obs ode.Observer) (ode.State, uint64, error) {
	if err := validateSpan(x0, t0, t1, dt); err != nil {
		return nil, 0, err
	}
	if obs == nil {
		obs = ode.ObserverFunc(func(ode.State, float64) {})
	}

	x := x0.Clone()
	t := t0
	obs.Observe(x, t)

	n := stepCount(t0, t1, dt)
	var count uint64
	for i := uint64(0); i < n; i++ {
		h := dt
		last := i == n-1
		if last {
			h = t1 - t
		}

		x = st.Step(sys, x, t, h)
		if !x.IsValid() {
			return nil, count, &ode.StepError{Step: count + 1, Time: t, Err: ode.ErrInvalidState}
		}

		if last {
			t = t1
		} else {
			t += dt
		}
		count++
		obs.Observe(x, t)
	}

	return x, count, nil
}

// IntegrateAdaptive advances x0 from t0 to t1 under step-size control,
// starting from a trial step of h0. The controller's proposal drives each
// following step, clamped so the run lands exactly on t1. Returns the
// final state and the number of accepted steps.
func IntegrateAdaptive(ad ode.AdaptiveStepper, sys ode.System, x0 ode.State, t0, t1, h0 float64, obs ode.Observer) (ode.State, uint64, error) {
	if err := validateSpan(x0, t0, t1, h0); err != nil {
		return nil, 0, err
	}
	if obs == nil {
		obs = ode.ObserverFunc(func(ode.State, float64) {})
	}

	x := x0.Clone()
	t := t0
	obs.Observe(x, t)

	h := h0
	var count uint64
	for t < t1 {
		landing := t+h >= t1
		if landing {
			h = t1 - t
		}

		xNew, took, err := ad.StepAdaptive(sys, x, t, h)
		if err != nil {
			return nil, count, &ode.StepError{Step: count + 1, Time: t, Err: err}
		}

		x = xNew
		if landing && took == h {
			t = t1
		} else {
			t += took
		}
		count++
		obs.Observe(x, t)

		h = ad.Delta()
	}

	return x, count, nil
}

// stepCount is ceil((t1-t0)/dt) with a relative guard so spans that are
// exact multiples of dt do not gain a rounding step.
func stepCount(t0, t1, dt float64) uint64 {
	q := (t1 - t0) / dt
	n := math.Floor(q)
	if q-n > spanGuard*q {
		n++
	}
	if n < 1 {
		n = 1
	}
	return uint64(n)
}

func validateSpan(x0 ode.State, t0, t1, dt float64) error {
	if len(x0) == 0 {
		return ode.ErrEmptyState
	}
	if !x0.IsValid() {
		return ode.ErrInvalidState
	}
	if t1 <= t0 {
		return fmt.Errorf("%w: start %g, end %g", ode.ErrInvalidSpan, t0, t1)
	}
	if dt <= 0 || math.IsNaN(dt) {
		return fmt.Errorf("%w: got %g", ode.ErrInvalidDelta, dt)
	}
	return nil
}
