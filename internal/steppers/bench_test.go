package steppers

import (
	"testing"

	"github.com/san-kum/numint/internal/ode"
)

var benchDynamics = ode.SystemFunc(func(x ode.State, t float64) ode.State {
	return ode.State{x[1], -x[0]}
})

func BenchmarkEuler(b *testing.B) {
	st := NewEuler()
	x := ode.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = st.Step(benchDynamics, x, 0, 0.01)
	}
}

func BenchmarkHeun(b *testing.B) {
	st := NewHeun()
	x := ode.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = st.Step(benchDynamics, x, 0, 0.01)
	}
}

func BenchmarkMidpoint(b *testing.B) {
	st := NewMidpoint()
	x := ode.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = st.Step(benchDynamics, x, 0, 0.01)
	}
}

func BenchmarkSimpson(b *testing.B) {
	st := NewSimpson()
	x := ode.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = st.Step(benchDynamics, x, 0, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	st := NewRK4()
	x := ode.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = st.Step(benchDynamics, x, 0, 0.01)
	}
}

func BenchmarkAdaptiveRK4(b *testing.B) {
	ad, _ := NewAdaptive(NewRK4(), DefaultOptions())
	x := ode.State{1.0, 0.0}
	tNow := 0.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next, took, err := ad.StepAdaptive(benchDynamics, x, tNow, ad.Delta())
		if err != nil {
			b.Fatal(err)
		}
		x = next
		tNow += took
	}
}

type benchWide struct{}

func (benchWide) Derivative(x ode.State, t float64) ode.State {
	dx := make(ode.State, len(x))
	for i := 0; i < len(x); i += 2 {
		dx[i] = x[i+1]
		dx[i+1] = -x[i] * 0.1
	}
	return dx
}

func BenchmarkRK4_Dim20(b *testing.B) {
	st := NewRK4()
	x := make(ode.State, 20)
	for i := range x {
		x[i] = float64(i) * 0.1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = st.Step(benchWide{}, x, 0, 0.001)
	}
}
