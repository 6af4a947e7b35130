package metrics

import "github.com/san-kum/numint/internal/ode"

// Metric accumulates one scalar measurement over a run. Observe matches
// the ode.Observer contract, so metrics hang directly off the driver's
// observer chain.
type Metric interface {
	Name() string
	Observe(x ode.State, t float64)
	Value() float64
	Reset()
}

// Collect reduces a set of metrics to a name -> value map.
func Collect(ms []Metric) map[string]float64 {
	if len(ms) == 0 {
		return nil
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
