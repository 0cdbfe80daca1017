package math

import (
	"math"
	"testing"
)

// TestBasePolyN_Vector tests BasePolyN with multiple values and a short output.
func TestBasePolyN_Vector(t *testing.T) {
	c := []float64{1, -1, 0.5, 0.25}

	x := make([]float64, 16)
	result := make([]float64, 12)
	for i := range x {
		x[i] = float64(i) / 4
	}

	BasePolyN(x, c, result)

	for i := range result {
		xi := x[i]
		want := 1 - xi + 0.5*xi*xi + 0.25*xi*xi*xi
		if math.Abs(result[i]-want) > 1e-12 {
			t.Errorf("BasePolyN at index %d: got %v, want %v", i, result[i], want)
		}
	}
}

func TestBasePolyN_Empty(t *testing.T) {
	result := []float32{7, 7}
	BasePolyN([]float32{1, 2}, nil, result)
	if result[0] != 0 || result[1] != 0 {
		t.Errorf("empty polynomial: got %v, want zeros", result)
	}
}

func TestHorner(t *testing.T) {
	// Coefficients of the exp kernel evaluated at zero return the constant term.
	if got := horner(0, expCoeffs_f64); got != expCoeffs_f64[0] {
		t.Errorf("horner(0) = %v, want %v", got, expCoeffs_f64[0])
	}
	if got := horner(2, []float64{3}); got != 3 {
		t.Errorf("horner of constant = %v, want 3", got)
	}
}
