package math

import (
	stdmath "math"

	"github.com/go-highway/hwymath/hwy"
)

// asinRatio returns t·P(t)/Q(t), the correction term of the arcsine series.
func asinRatio(t float64, p *precision) float64 {
	return t * horner(t, p.asinP) / horner(t, p.asinQ)
}

// asinCore computes asin(x) in binary64 with the tables of p.
//
// Below 0.5 the series is evaluated on x directly. Above, the half-angle
// identity asin(x) = π/2 − 2·asin(√((1−|x|)/2)) keeps the argument small and
// avoids the cancellation near ±1. Between 0.5 and 0.975 the square root is
// split into a truncated head and a correction term.
func asinCore(x float64, p *precision) float64 {
	if r, ok := arcSpecial(x); ok {
		return r
	}
	ax := stdmath.Abs(x)
	if ax == 1 {
		return x*asinPio2Hi + x*asinPio2Lo
	}
	if ax < asinHalfMark {
		if ax < asinTinyArg {
			return x
		}
		return x + x*asinRatio(x*x, p)
	}
	t := (1.0 - ax) * 0.5
	r := asinRatio(t, p)
	s := stdmath.Sqrt(t)
	if ax >= asinNearOne {
		t = asinPio2Hi - (2.0*(s+s*r) - asinPio2Lo)
	} else {
		w := hwy.TruncateMantissa(s, highWordBits)
		c := (t - w*w) / (s + w)
		pp := 2.0*s*r - (asinPio2Lo - 2.0*c)
		q := asinPio4Hi - 2.0*w
		t = asinPio4Hi - (pp - q)
	}
	if x < 0 {
		return -t
	}
	return t
}

// acosCore computes acos(x) in binary64 with the tables of p. It shares
// the arcsine series but is arranged so that no step subtracts nearly equal
// quantities: acos(x) = 2·asin(√((1−x)/2)) for x ≥ 0.5 and
// π − 2·asin(√((1+x)/2)) for x ≤ −0.5.
func acosCore(x float64, p *precision) float64 {
	if r, ok := arcSpecial(x); ok {
		return r
	}
	switch {
	case x == 1:
		return 0
	case x == -1:
		return asinPi + 2.0*asinPio2Lo
	}
	ax := stdmath.Abs(x)
	if ax < asinHalfMark {
		if ax <= acosTinyArg {
			return asinPio2Hi + asinPio2Lo
		}
		r := asinRatio(x*x, p)
		return asinPio2Hi - (x - (asinPio2Lo - x*r))
	}
	if x < 0 {
		z := (1.0 + x) * 0.5
		r := asinRatio(z, p)
		s := stdmath.Sqrt(z)
		w := r*s - asinPio2Lo
		return asinPi - 2.0*(s+w)
	}
	z := (1.0 - x) * 0.5
	s := stdmath.Sqrt(z)
	df := hwy.TruncateMantissa(s, highWordBits)
	c := (z - df*df) / (s + df)
	r := asinRatio(z, p)
	w := r*s + c
	return 2.0 * (df + w)
}

// Asin computes asin(x) for each element in the vector.
//
// Special cases:
//   - Asin(±0) = ±0
//   - Asin(±1) = ±π/2
//   - Asin(x) = NaN for |x| > 1
//   - Asin(NaN) = NaN
func Asin[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, AsinScalar[T])
}

// Acos computes acos(x) for each element in the vector.
//
// Special cases:
//   - Acos(1) = +0
//   - Acos(-1) = π
//   - Acos(x) = NaN for |x| > 1
//   - Acos(NaN) = NaN
func Acos[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, AcosScalar[T])
}
