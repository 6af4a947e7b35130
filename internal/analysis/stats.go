package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/numint/internal/ode"
)

// ComponentStats summarize one state component over a run.
type ComponentStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes per-component statistics for a recorded trajectory.
func Summarize(states []ode.State) []ComponentStats {
	if len(states) == 0 {
		return nil
	}

	dim := len(states[0])
	out := make([]ComponentStats, dim)
	col := make([]float64, len(states))

	for i := 0; i < dim; i++ {
		for j, s := range states {
			col[j] = s[i]
		}
		mean, std := stat.MeanStdDev(col, nil)
		out[i] = ComponentStats{
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(col),
			Max:    floats.Max(col),
		}
	}
	return out
}
