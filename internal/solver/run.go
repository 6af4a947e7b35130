package solver

import (
	"time"

	"github.com/san-kum/numint/internal/ode"
)

// Result summarizes one completed run.
type Result struct {
	Final ode.State
	Steps uint64

	// SubSteps is the wrapped stepper's counter for adaptive runs,
	// covering accepted and rejected trials. Zero for fixed runs.
	SubSteps uint64

	// Forced counts adaptive steps accepted past tolerance.
	Forced uint64

	Elapsed time.Duration
}

// Run drives st over [t0, t1] and collects the run summary. An
// AdaptiveStepper runs under step-size control with delta as the initial
// trial step; any other stepper runs at constant delta.
func Run(st ode.Stepper, sys ode.System, x0 ode.State, t0, t1, delta float64, obs ode.Observer) (*Result, error) {
	start := time.Now()

	var (
		final ode.State
		n     uint64
		err   error
	)
	if ad, ok := st.(ode.AdaptiveStepper); ok {
		final, n, err = IntegrateAdaptive(ad, sys, x0, t0, t1, delta, obs)
	} else {
		final, n, err = IntegrateFixed(st, sys, x0, t0, t1, delta, obs)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{
		Final:   final,
		Steps:   n,
		Elapsed: time.Since(start),
	}
	if f, ok := st.(interface{ Forced() uint64 }); ok {
		res.Forced = f.Forced()
	}
	if in, ok := st.(interface{ Inner() ode.Stepper }); ok {
		res.SubSteps = in.Inner().Steps()
	}
	return res, nil
}
