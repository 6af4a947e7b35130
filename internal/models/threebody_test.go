package models

import (
	"math"
	"testing"

	"github.com/san-kum/numint/internal/solver"
	"github.com/san-kum/numint/internal/steppers"
)

func TestThreeBodyMomentum(t *testing.T) {
	tb := NewThreeBody()
	x0 := tb.Initial()

	px, py := 0.0, 0.0
	for i := 0; i < 3; i++ {
		px += tb.Masses[i] * x0[i*4+2]
		py += tb.Masses[i] * x0[i*4+3]
	}

	if math.Abs(px) > 1e-6 || math.Abs(py) > 1e-6 {
		t.Errorf("choreography should start with zero net momentum, got (%g, %g)", px, py)
	}
}

func TestThreeBodyForceSymmetry(t *testing.T) {
	tb := NewThreeBody()

	// Bodies one and two sit mirrored through the origin, so their
	// accelerations mirror too.
	dx := tb.Derivative(tb.Initial(), 0)

	if math.Abs(dx[2]+dx[6]) > 1e-9 || math.Abs(dx[3]+dx[7]) > 1e-9 {
		t.Errorf("outer accelerations not mirrored: (%g, %g) vs (%g, %g)",
			dx[2], dx[3], dx[6], dx[7])
	}
}

func TestThreeBodyEnergyConservation(t *testing.T) {
	tb := NewThreeBody()

	x0 := tb.Initial()
	final, _, err := solver.IntegrateFixed(steppers.NewRK4(), tb, x0, 0, 2, 1e-3, nil)
	if err != nil {
		t.Fatalf("integration failed: %v", err)
	}

	if drift := math.Abs(tb.Energy(final) - tb.Energy(x0)); drift > 1e-8 {
		t.Errorf("energy drifted by %g", drift)
	}
}

func TestThreeBodyPeriodicity(t *testing.T) {
	tb := NewThreeBody()

	// Figure-eight period from the choreography literature.
	const period = 6.32591398

	x0 := tb.Initial()
	final, _, err := solver.IntegrateFixed(steppers.NewRK4(), tb, x0, 0, period, 1e-3, nil)
	if err != nil {
		t.Fatalf("integration failed: %v", err)
	}

	for i := range x0 {
		if math.Abs(final[i]-x0[i]) > 1e-2 {
			t.Errorf("component %d did not return: %g vs %g", i, final[i], x0[i])
			break
		}
	}
}
