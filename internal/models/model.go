package models

import (
	"fmt"
	"sort"

	"github.com/san-kum/numint/internal/ode"
)

// Model is a catalog system: a named ODE with a default initial state.
type Model interface {
	ode.System
	Name() string
	Dim() int
	Initial() ode.State
}

var catalog = map[string]func() Model{
	"springmass":     func() Model { return NewSpringMassDamper() },
	"torsion":        func() Model { return NewTorsionPendulum() },
	"robotarm":       func() Model { return NewRobotArm() },
	"exponential":    func() Model { return NewExponential() },
	"pendulum":       func() Model { return NewPendulum() },
	"doublependulum": func() Model { return NewDoublePendulum() },
	"threebody":      func() Model { return NewThreeBody() },
}

// Get returns a fresh model by name.
func Get(name string) (Model, error) {
	fn, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

// List returns the registered model names, sorted.
func List() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
