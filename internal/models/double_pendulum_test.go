package models

import (
	"math"
	"testing"

	"github.com/san-kum/numint/internal/ode"
	"github.com/san-kum/numint/internal/solver"
	"github.com/san-kum/numint/internal/steppers"
)

func TestDoublePendulumEquilibrium(t *testing.T) {
	dp := NewDoublePendulum()

	dx := dp.Derivative(ode.State{0, 0, 0, 0}, 0)

	for i, v := range dx {
		if math.Abs(v) > 1e-12 {
			t.Errorf("component %d nonzero hanging at rest: %g", i, v)
		}
	}
}

func TestDoublePendulumSymmetry(t *testing.T) {
	dp := NewDoublePendulum()

	// Mirrored configurations accelerate in mirrored directions.
	dx1 := dp.Derivative(ode.State{0.1, 0.1, 0, 0}, 0)
	dx2 := dp.Derivative(ode.State{-0.1, -0.1, 0, 0}, 0)

	if math.Abs(dx1[2]+dx2[2]) > 1e-9 {
		t.Errorf("upper accelerations not mirrored: %g vs %g", dx1[2], dx2[2])
	}
	if math.Abs(dx1[3]+dx2[3]) > 1e-9 {
		t.Errorf("lower accelerations not mirrored: %g vs %g", dx1[3], dx2[3])
	}
}

func TestDoublePendulumEnergyDrift(t *testing.T) {
	dp := NewDoublePendulum()

	x0 := dp.Initial()
	final, _, err := solver.IntegrateFixed(steppers.NewRK4(), dp, x0, 0, 2, 1e-4, nil)
	if err != nil {
		t.Fatalf("integration failed: %v", err)
	}

	if drift := math.Abs(dp.Energy(final) - dp.Energy(x0)); drift > 1e-6 {
		t.Errorf("conservative system drifted by %g", drift)
	}
}
