package steppers

import (
	"math"
	"testing"

	"github.com/san-kum/numint/internal/ode"
)

func TestParseErrorFormula(t *testing.T) {
	tests := []struct {
		name    string
		want    ErrorFormula
		wantErr bool
	}{
		{"", ErrorMixed, false},
		{"mixed", ErrorMixed, false},
		{"absolute", ErrorAbsolute, false},
		{"abs", ErrorAbsolute, false},
		{"relative", ErrorRelative, false},
		{"rel", ErrorRelative, false},
		{"euclidean", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseErrorFormula(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseErrorFormula(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseErrorFormula(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseErrorFormula(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestErrorFormula_String(t *testing.T) {
	tests := []struct {
		f    ErrorFormula
		want string
	}{
		{ErrorMixed, "mixed"},
		{ErrorAbsolute, "absolute"},
		{ErrorRelative, "relative"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLocalError(t *testing.T) {
	xFull := ode.State{1.1, 2.0}
	xHalf := ode.State{1.0, 2.0}

	tests := []struct {
		name string
		f    ErrorFormula
		want float64
	}{
		{"absolute", ErrorAbsolute, 0.1},
		{"relative", ErrorRelative, 0.1},
		{"mixed", ErrorMixed, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := localError(tt.f, xFull, xHalf); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("localError = %.15f, want %.15f", got, tt.want)
			}
		})
	}
}

func TestLocalError_NearZero(t *testing.T) {
	xFull := ode.State{1e-12}
	xHalf := ode.State{0.0}

	// The relative formula floors the scale; mixed degrades to absolute.
	if got := localError(ErrorAbsolute, xFull, xHalf); math.Abs(got-1e-12) > 1e-24 {
		t.Errorf("absolute = %g, want 1e-12", got)
	}
	if got := localError(ErrorRelative, xFull, xHalf); math.Abs(got-1e-2) > 1e-14 {
		t.Errorf("relative = %g, want 1e-2", got)
	}
	if got := localError(ErrorMixed, xFull, xHalf); math.Abs(got-1e-12) > 1e-24 {
		t.Errorf("mixed = %g, want 1e-12", got)
	}
}

func TestLocalError_PicksLargestComponent(t *testing.T) {
	xFull := ode.State{1.0, 5.5}
	xHalf := ode.State{1.0, 5.0}

	if got := localError(ErrorAbsolute, xFull, xHalf); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected the larger difference 0.5, got %g", got)
	}
}
