package math

import (
	stdmath "math"
	"testing"

	"github.com/go-highway/hwymath/hwy"
)

func TestExpLogExact(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"exp(0)", Exp64Scalar(0), 1},
		{"exp2(10)", Exp2_64Scalar(10), 1024},
		{"exp2(-3)", Exp2_64Scalar(-3), 0.125},
		{"exp2(-1074)", Exp2_64Scalar(-1074), 5e-324},
		{"exp10(2)", Exp10_64Scalar(2), 100},
		{"exp10(3)", Exp10_64Scalar(3), 1000},
		{"exp10(-1)", Exp10_64Scalar(-1), 0.1},
		{"log(1)", Log64Scalar(1), 0},
		{"log(e)", Log64Scalar(stdmath.E), 1},
		{"log2(1024)", Log2_64Scalar(1024), 10},
		{"log2(0.125)", Log2_64Scalar(0.125), -3},
		{"log10(1000)", Log10_64Scalar(1000), 3},
		{"log10(100)", Log10_64Scalar(100), 2},
		{"log10(1e-5)", Log10_64Scalar(1e-5), -5},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if got := Exp10_32Scalar(3); got != 1000 {
		t.Errorf("Exp10_32Scalar(3) = %v, want 1000", got)
	}
	if got := Log2_32Scalar(1024); got != 10 {
		t.Errorf("Log2_32Scalar(1024) = %v, want 10", got)
	}
}

func TestExpLimits(t *testing.T) {
	inf := stdmath.Inf(1)
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"exp(710)", Exp64Scalar(710), inf},
		{"exp(-746)", Exp64Scalar(-746), 0},
		{"exp(+Inf)", Exp64Scalar(inf), inf},
		{"exp(-Inf)", Exp64Scalar(-inf), 0},
		{"exp(709.78)", Exp64Scalar(709.78), 1.7928227943945155e308},
		{"exp(-745.1)", Exp64Scalar(-745.1), 5e-324},
		{"exp2(1024)", Exp2_64Scalar(1024), inf},
		{"exp2(-1076)", Exp2_64Scalar(-1076), 0},
		{"exp10(309)", Exp10_64Scalar(309), inf},
		{"exp10(-330)", Exp10_64Scalar(-330), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if got := Exp32Scalar(89); !stdmath.IsInf(float64(got), 1) {
		t.Errorf("Exp32Scalar(89) = %v, want +Inf", got)
	}
	if got := Exp32Scalar(-110); got != 0 {
		t.Errorf("Exp32Scalar(-110) = %v, want 0", got)
	}
	if got := Exp64Scalar(stdmath.NaN()); !stdmath.IsNaN(got) {
		t.Errorf("Exp64Scalar(NaN) = %v, want NaN", got)
	}
}

func TestLogSpecialValues(t *testing.T) {
	for _, f := range []struct {
		name string
		fn   func(float64) float64
	}{
		{"Log64Scalar", Log64Scalar},
		{"Log2_64Scalar", Log2_64Scalar},
		{"Log10_64Scalar", Log10_64Scalar},
	} {
		if got := f.fn(0); !stdmath.IsInf(got, -1) {
			t.Errorf("%s(0) = %v, want -Inf", f.name, got)
		}
		if got := f.fn(stdmath.Copysign(0, -1)); !stdmath.IsInf(got, -1) {
			t.Errorf("%s(-0) = %v, want -Inf", f.name, got)
		}
		if got := f.fn(-1); !stdmath.IsNaN(got) {
			t.Errorf("%s(-1) = %v, want NaN", f.name, got)
		}
		if got := f.fn(stdmath.Inf(1)); !stdmath.IsInf(got, 1) {
			t.Errorf("%s(+Inf) = %v, want +Inf", f.name, got)
		}
		if got := f.fn(stdmath.NaN()); !stdmath.IsNaN(got) {
			t.Errorf("%s(NaN) = %v, want NaN", f.name, got)
		}
	}
}

func TestExp(t *testing.T) {
	xs := append(sweep(-10, 10, 0.05), 1e-20, -3e-9, 50, -300, 700, -740)
	checkAgainst64(t, "Exp64Scalar", Exp64Scalar, stdmath.Exp, xs, 2)
	checkAgainst64(t, "Exp2_64Scalar", Exp2_64Scalar, stdmath.Exp2, xs, 2)
	checkAgainst64(t, "Exp10_64Scalar", Exp10_64Scalar, func(x float64) float64 { return stdmath.Pow(10, x) }, sweep(-10, 10, 0.05), 4)

	xs32 := append(sweep(-10, 10, 0.05), 80, -80, -100)
	checkAgainst32(t, "Exp32Scalar", Exp32Scalar, stdmath.Exp, xs32, 1)
	checkAgainst32(t, "Exp2_32Scalar", Exp2_32Scalar, stdmath.Exp2, xs32, 1)
	checkAgainst32(t, "Exp10_32Scalar", Exp10_32Scalar, func(x float64) float64 { return stdmath.Pow(10, x) }, sweep(-10, 10, 0.05), 1)
}

func TestLog(t *testing.T) {
	xs := append(sweep(0.5, 100, 0.5), 0.999, 1.4142, 1.4143, 1e-300, 1e300, stdmath.MaxFloat64)
	checkAgainst64(t, "Log64Scalar", Log64Scalar, stdmath.Log, xs, 2)
	checkAgainst64(t, "Log2_64Scalar", Log2_64Scalar, stdmath.Log2, xs, 4)
	checkAgainst64(t, "Log10_64Scalar", Log10_64Scalar, stdmath.Log10, xs, 4)

	xs32 := append(sweep(0.5, 100, 0.5), 1e-40, 3e38)
	checkAgainst32(t, "Log32Scalar", Log32Scalar, stdmath.Log, xs32, 1)
	checkAgainst32(t, "Log2_32Scalar", Log2_32Scalar, stdmath.Log2, xs32, 1)
	checkAgainst32(t, "Log10_32Scalar", Log10_32Scalar, stdmath.Log10, xs32, 1)
}

func TestExpLogVectorWidths(t *testing.T) {
	src := make([]float32, 16)
	for i := range src {
		src[i] = float32(i)*1.3 + 0.25
	}
	for _, w := range hwy.SupportedWidths {
		v := hwy.LoadN(src, w)
		e, e2, e10 := Exp(v), Exp2(v), Exp10(v)
		l, l2, l10 := Log(v), Log2(v), Log10(v)
		for i := range int(w) {
			x := src[i]
			if e.Lane(i) != Exp32Scalar(x) || e2.Lane(i) != Exp2_32Scalar(x) || e10.Lane(i) != Exp10_32Scalar(x) {
				t.Errorf("exp family %v lane %d differs from scalar", w, i)
			}
			if l.Lane(i) != Log32Scalar(x) || l2.Lane(i) != Log2_32Scalar(x) || l10.Lane(i) != Log10_32Scalar(x) {
				t.Errorf("log family %v lane %d differs from scalar", w, i)
			}
		}
	}
}

func TestBaseExpLogPoly(t *testing.T) {
	// 37 elements leaves a tail at every natural width.
	input := make([]float64, 37)
	for i := range input {
		input[i] = float64(i)*0.4 - 7
	}
	expOut := make([]float64, len(input))
	BaseExpPoly(input, expOut)
	logOut := make([]float64, len(input))
	BaseLogPoly(expOut, logOut)
	for i, x := range input {
		if expOut[i] != Exp64Scalar(x) {
			t.Errorf("BaseExpPoly[%d] = %v, want %v", i, expOut[i], Exp64Scalar(x))
		}
		if stdmath.Abs(logOut[i]-x) > 1e-14 {
			t.Errorf("log(exp(%v)) = %v", x, logOut[i])
		}
	}

	out2 := make([]float64, len(input))
	BaseExp2Poly(input, out2)
	out10 := make([]float64, len(input))
	BaseExp10Poly(input, out10)
	l2 := make([]float64, len(input))
	BaseLog2Poly(out2, l2)
	l10 := make([]float64, len(input))
	BaseLog10Poly(out10, l10)
	for i, x := range input {
		if out2[i] != Exp2_64Scalar(x) || out10[i] != Exp10_64Scalar(x) {
			t.Errorf("BaseExp2Poly/BaseExp10Poly index %d differs from scalar", i)
		}
		if l2[i] != Log2_64Scalar(out2[i]) || l10[i] != Log10_64Scalar(out10[i]) {
			t.Errorf("BaseLog2Poly/BaseLog10Poly index %d differs from scalar", i)
		}
	}
}
