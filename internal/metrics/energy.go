package metrics

import (
	"math"

	"github.com/san-kum/numint/internal/ode"
)

// EnergyDrift tracks the largest relative departure from the initial
// energy of a system exposing an energy functional. For a dissipative
// system this measures total decay, for a conservative one integration
// error.
type EnergyDrift struct {
	name     string
	sys      ode.Hamiltonian
	initial  float64
	current  float64
	maxDrift float64
	samples  int
}

// NewEnergyDrift returns nil when sys has no energy functional; callers
// skip attaching it in that case.
func NewEnergyDrift(sys ode.System) *EnergyDrift {
	h, ok := sys.(ode.Hamiltonian)
	if !ok {
		return nil
	}
	return &EnergyDrift{name: "energy_drift", sys: h}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(x ode.State, t float64) {
	energy := e.sys.Energy(x)

	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.current = 0
	e.maxDrift = 0
	e.samples = 0
}
