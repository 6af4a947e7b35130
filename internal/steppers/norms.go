package steppers

import (
	"fmt"
	"math"

	"github.com/san-kum/numint/internal/ode"
)

// ErrorFormula selects how the step-doubling error estimate is normalized
// across state components.
type ErrorFormula int

const (
	// ErrorMixed scales each component difference by 1 + |x|, behaving
	// like an absolute norm near zero and a relative norm for large
	// components. The default.
	ErrorMixed ErrorFormula = iota

	// ErrorAbsolute takes the largest raw component difference.
	ErrorAbsolute

	// ErrorRelative scales each component difference by its magnitude.
	ErrorRelative
)

// Divide-by-zero floor for the relative formula.
const relativeFloor = 1e-10

func (f ErrorFormula) String() string {
	switch f {
	case ErrorMixed:
		return "mixed"
	case ErrorAbsolute:
		return "absolute"
	case ErrorRelative:
		return "relative"
	}
	return fmt.Sprintf("ErrorFormula(%d)", int(f))
}

// ParseErrorFormula maps a configuration name to its formula. The empty
// string selects the default.
func ParseErrorFormula(name string) (ErrorFormula, error) {
	switch name {
	case "", "mixed":
		return ErrorMixed, nil
	case "absolute", "abs":
		return ErrorAbsolute, nil
	case "relative", "rel":
		return ErrorRelative, nil
	}
	return 0, fmt.Errorf("unknown error formula: %s", name)
}

// localError reduces the difference between the full-step and half-step
// candidates to one scalar. xHalf is the committed (higher accuracy)
// candidate, so it supplies the scale.
func localError(f ErrorFormula, xFull, xHalf ode.State) float64 {
	errMax := 0.0
	for i := range xFull {
		d := math.Abs(xFull[i] - xHalf[i])
		switch f {
		case ErrorAbsolute:
		case ErrorRelative:
			d /= math.Max(math.Abs(xHalf[i]), relativeFloor)
		default:
			d /= 1 + math.Abs(xHalf[i])
		}
		if d > errMax {
			errMax = d
		}
	}
	return errMax
}
