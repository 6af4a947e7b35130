package steppers

import (
	"fmt"
	"sort"

	"github.com/san-kum/numint/internal/ode"
)

// Info describes a registered method for lookup and listings.
type Info struct {
	New         func() ode.Stepper
	Order       int
	Evaluations int
	Description string
}

var catalog = map[string]Info{
	"euler": {
		New: func() ode.Stepper { return NewEuler() }, Order: 1, Evaluations: 1,
		Description: "forward Euler",
	},
	"heun": {
		New: func() ode.Stepper { return NewHeun() }, Order: 2, Evaluations: 2,
		Description: "improved Euler (Heun)",
	},
	"midpoint": {
		New: func() ode.Stepper { return NewMidpoint() }, Order: 2, Evaluations: 2,
		Description: "explicit midpoint",
	},
	"trapezoidal": {
		New: func() ode.Stepper { return NewTrapezoidal() }, Order: 2, Evaluations: 2,
		Description: "explicit trapezoid",
	},
	"simpson": {
		New: func() ode.Stepper { return NewSimpson() }, Order: 3, Evaluations: 3,
		Description: "Kutta third order, Simpson weights",
	},
	"rk4": {
		New: func() ode.Stepper { return NewRK4() }, Order: 4, Evaluations: 4,
		Description: "classical Runge-Kutta",
	},
}

// Get returns a fresh stepper by name.
func Get(name string) (ode.Stepper, error) {
	info, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown stepper: %s", name)
	}
	return info.New(), nil
}

// Lookup returns the descriptor for name.
func Lookup(name string) (Info, error) {
	info, ok := catalog[name]
	if !ok {
		return Info{}, fmt.Errorf("unknown stepper: %s", name)
	}
	return info, nil
}

// List returns the registered method names, sorted.
func List() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
