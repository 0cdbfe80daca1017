package math

import (
	stdmath "math"
	"math/big"
	"testing"
)

func TestReductionConstants(t *testing.T) {
	// π = 3.243F6A8885A308D3 13198A2E... in hex.
	pi := new(big.Int).Rsh(machinPi(128), 64)
	if want, _ := new(big.Int).SetString("3243F6A8885A308D3", 16); pi.Cmp(want) != 0 {
		t.Errorf("machinPi: got %x, want %x", pi, want)
	}
	// 2/π = 0.A2F9836E4E441529 FC2757D1... in hex.
	top := new(big.Int).Rsh(twoOverPiBits, twoOverPiScale-64)
	if want, _ := new(big.Int).SetString("A2F9836E4E441529", 16); top.Cmp(want) != 0 {
		t.Errorf("twoOverPiBits: got %x, want %x", top, want)
	}
	if f, _ := piOver2.Float64(); f != stdmath.Pi/2 {
		t.Errorf("piOver2 = %v, want %v", f, stdmath.Pi/2)
	}
}

// TestReductionAgreement checks that both reduction paths give the same
// quadrant and remainder inside the medium range.
func TestReductionAgreement(t *testing.T) {
	for _, x := range []float64{1, 10, 100.5, 355, 12345.678, 1e6, 1.5e6} {
		n1, hi1, lo1 := reduceCodyWaite(x)
		n2, hi2, lo2 := reducePayneHanek(x)
		if n1&3 != n2 {
			t.Errorf("x=%v: quadrant %d (Cody-Waite) vs %d (Payne-Hanek)", x, n1&3, n2)
			continue
		}
		if d := stdmath.Abs((hi1 + lo1) - (hi2 + lo2)); d > 4e-16*stdmath.Abs(hi2) {
			t.Errorf("x=%v: remainder %v+%v (Cody-Waite) vs %v+%v (Payne-Hanek)", x, hi1, lo1, hi2, lo2)
		}
	}
}

func TestReducePio2Bounds(t *testing.T) {
	for _, x := range []float64{0.5, -2, 7, -1e5, 1.7e6, -3e9, 1e22, 1e300, -stdmath.MaxFloat64} {
		_, hi, _ := reducePio2(x)
		if stdmath.Abs(hi) > stdmath.Pi/4*(1+1e-15) {
			t.Errorf("reducePio2(%v) remainder %v outside [-π/4, π/4]", x, hi)
		}
	}
}

func TestHugeArgument(t *testing.T) {
	if got, want := Sin64Scalar(1e22), -0.8522008497671888; ulpDist64(got, want) > 1 {
		t.Errorf("Sin64Scalar(1e22) = %v, want %v", got, want)
	}
	for _, x := range []float64{1e18, 2.5e40, 6.02e23, 1e300} {
		if d := ulpDist64(Cos64Scalar(x), stdmath.Cos(x)); d > 2 {
			t.Errorf("Cos64Scalar(%v) = %v, want %v", x, Cos64Scalar(x), stdmath.Cos(x))
		}
		if d := ulpDist64(Sin64Scalar(-x), -stdmath.Sin(x)); d > 2 {
			t.Errorf("Sin64Scalar(%v) = %v, want %v", -x, Sin64Scalar(-x), -stdmath.Sin(x))
		}
	}
}
