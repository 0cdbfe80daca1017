package math

import (
	stdmath "math"
	"testing"
)

// ulpDist64 returns the number of representable float64 values between a
// and b. NaN matches only NaN.
func ulpDist64(a, b float64) uint64 {
	if stdmath.IsNaN(a) || stdmath.IsNaN(b) {
		if stdmath.IsNaN(a) && stdmath.IsNaN(b) {
			return 0
		}
		return stdmath.MaxUint64
	}
	ia, ib := ordered64(a), ordered64(b)
	if ia > ib {
		return uint64(ia - ib)
	}
	return uint64(ib - ia)
}

func ordered64(x float64) int64 {
	b := int64(stdmath.Float64bits(x))
	if b < 0 {
		return stdmath.MinInt64 - b
	}
	return b
}

func ulpDist32(a, b float32) uint64 {
	if a != a || b != b {
		if a != a && b != b {
			return 0
		}
		return stdmath.MaxUint64
	}
	ia, ib := ordered32(a), ordered32(b)
	if ia > ib {
		return uint64(ia - ib)
	}
	return uint64(ib - ia)
}

func ordered32(x float32) int64 {
	b := int32(stdmath.Float32bits(x))
	if b < 0 {
		return int64(stdmath.MinInt32) - int64(b)
	}
	return int64(b)
}

// sweep returns start, start+step, ... while below end.
func sweep(start, end, step float64) []float64 {
	var out []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v >= end {
			return out
		}
		out = append(out, v)
	}
}

// checkAgainst64 compares f with a trusted float64 implementation.
func checkAgainst64(t *testing.T, name string, f, ref func(float64) float64, xs []float64, maxULP uint64) {
	t.Helper()
	for _, x := range xs {
		got, want := f(x), ref(x)
		if d := ulpDist64(got, want); d > maxULP {
			t.Errorf("%s(%v) = %v, want %v (%d ULP apart)", name, x, got, want, d)
		}
	}
}

// checkAgainst32 compares f with a float64 implementation rounded to float32.
func checkAgainst32(t *testing.T, name string, f func(float32) float32, ref func(float64) float64, xs []float64, maxULP uint64) {
	t.Helper()
	for _, v := range xs {
		x := float32(v)
		got, want := f(x), float32(ref(float64(x)))
		if d := ulpDist32(got, want); d > maxULP {
			t.Errorf("%s(%v) = %v, want %v (%d ULP apart)", name, x, got, want, d)
		}
	}
}
