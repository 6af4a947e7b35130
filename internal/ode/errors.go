package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration operations.
var (
	// ErrInvalidState indicates a state vector with NaN or Inf components.
	ErrInvalidState = errors.New("numint: invalid state (NaN or Inf detected)")

	// ErrEmptyState indicates a zero-dimension initial state.
	ErrEmptyState = errors.New("numint: empty initial state")

	// ErrInvalidSpan indicates end time does not exceed start time.
	ErrInvalidSpan = errors.New("numint: end time must be greater than start time")

	// ErrInvalidDelta indicates a non-positive step size.
	ErrInvalidDelta = errors.New("numint: step size must be positive")

	// ErrInvalidBounds indicates min delta exceeds max delta.
	ErrInvalidBounds = errors.New("numint: min delta exceeds max delta")

	// ErrInvalidTolerance indicates a non-positive error tolerance.
	ErrInvalidTolerance = errors.New("numint: tolerance must be positive")

	// ErrToleranceNotMet indicates the controller exhausted its refinement
	// budget at the minimum step size while the strict policy is active.
	ErrToleranceNotMet = errors.New("numint: tolerance not met at minimum step size")
)

// StepError wraps a runtime error with its position in the run. Samples
// delivered to the observer before the failing step remain valid.
type StepError struct {
	Step uint64
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("numint: step %d (t=%.6f): %v", e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
