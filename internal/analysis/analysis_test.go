package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/numint/internal/ode"
)

func TestSummarize(t *testing.T) {
	states := []ode.State{
		{1.0, -1.0},
		{2.0, 0.0},
		{3.0, 1.0},
	}

	stats := Summarize(states)
	if len(stats) != 2 {
		t.Fatalf("expected stats for 2 components, got %d", len(stats))
	}

	if math.Abs(stats[0].Mean-2.0) > 1e-12 {
		t.Errorf("mean %g, want 2", stats[0].Mean)
	}
	// Sample standard deviation (n-1 divisor).
	if math.Abs(stats[0].StdDev-1.0) > 1e-12 {
		t.Errorf("stddev %g, want 1", stats[0].StdDev)
	}
	if stats[0].Min != 1.0 || stats[0].Max != 3.0 {
		t.Errorf("range [%g, %g], want [1, 3]", stats[0].Min, stats[0].Max)
	}
	if stats[1].Mean != 0.0 {
		t.Errorf("second component mean %g, want 0", stats[1].Mean)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if got := Summarize(nil); got != nil {
		t.Errorf("expected nil for an empty trajectory, got %v", got)
	}
}

func TestFFT_Constant(t *testing.T) {
	data := []float64{2, 2, 2, 2, 2, 2, 2, 2}

	spectrum := FFT(data)

	// All the signal lands in the DC bin.
	if math.Abs(real(spectrum[0])-16) > 1e-9 {
		t.Errorf("dc bin %v, want 16", spectrum[0])
	}
	for i := 1; i < len(spectrum); i++ {
		if math.Abs(real(spectrum[i])) > 1e-9 || math.Abs(imag(spectrum[i])) > 1e-9 {
			t.Errorf("bin %d should be empty, got %v", i, spectrum[i])
		}
	}
}

func TestFFT_OddLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a non power-of-two length")
		}
	}()
	FFT(make([]float64, 6))
}

func TestPowerSpectrum_SingleTone(t *testing.T) {
	const n = 128
	const cycle = 8

	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * cycle * float64(i) / n)
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2 {
		t.Fatalf("spectrum length %d, want %d", len(ps), n/2)
	}

	peak := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != cycle {
		t.Errorf("peak at bin %d, want %d", peak, cycle)
	}
}

func TestDominantFrequency(t *testing.T) {
	const n = 256
	const dt = 0.01
	const freq = 5.0 // cycles per time unit

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Cos(2 * math.Pi * freq * float64(i) * dt)
	}

	got := DominantFrequency(samples, dt)

	// Bin resolution is 1/(n*dt).
	if math.Abs(got-freq) > 1.0/(n*dt) {
		t.Errorf("dominant frequency %g, want %g", got, freq)
	}
}

func TestDominantFrequency_Truncates(t *testing.T) {
	// 100 samples fold down to 64; the result must still be sensible.
	samples := make([]float64, 100)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 16 * float64(i) / 64)
	}

	got := DominantFrequency(samples, 1.0)
	if math.Abs(got-16.0/64.0) > 1e-9 {
		t.Errorf("frequency %g, want %g", got, 16.0/64.0)
	}
}

func TestDominantFrequency_Degenerate(t *testing.T) {
	if DominantFrequency([]float64{1, 2, 3}, 0.1) != 0 {
		t.Error("too few samples should yield 0")
	}
	if DominantFrequency(make([]float64, 64), -1) != 0 {
		t.Error("non-positive spacing should yield 0")
	}
}
