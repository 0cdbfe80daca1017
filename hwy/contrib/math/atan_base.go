package math

import (
	stdmath "math"

	"github.com/go-highway/hwymath/hwy"
)

// atanCore computes atan(x) in binary64 with the tables of p.
//
// |x| is reduced around the breakpoints 7/16, 11/16, 19/16 and 39/16:
// atan(x) = atan(c) + atan((x−c)/(1+x·c)) for c in {0.5, 1, 1.5}, and
// atan(x) = π/2 − atan(1/x) above 39/16, leaving |t| ≤ 7/16 for the series.
func atanCore(x float64, p *precision) float64 {
	if isNaN(x) {
		return x
	}
	ax := stdmath.Abs(x)
	if ax >= atanHuge {
		return stdmath.Copysign(atanHi[3]+atanLo[3], x)
	}
	id := -1
	switch {
	case ax < atanBreak[0]:
		if ax < atanTiny {
			return x
		}
	case ax < atanBreak[1]:
		id = 0
		ax = (2.0*ax - 1.0) / (2.0 + ax)
	case ax < atanBreak[2]:
		id = 1
		ax = (ax - 1.0) / (ax + 1.0)
	case ax < atanBreak[3]:
		id = 2
		ax = (ax - 1.5) / (1.0 + 1.5*ax)
	default:
		id = 3
		ax = -1.0 / ax
	}
	z := ax * ax
	w := z * z
	s1 := z * horner(w, p.atanEven)
	s2 := w * horner(w, p.atanOdd)
	if id < 0 {
		return x - x*(s1+s2)
	}
	r := atanHi[id] - ((ax*(s1+s2) - atanLo[id]) - ax)
	if x < 0 {
		return -r
	}
	return r
}

// atan2Core computes atan2(y, x) in binary64.
//
// Quadrants follow the signs of y and x: atan(|y/x|) is mirrored into the
// right half-plane and offset by π when x < 0. When x and y are both zero
// the result is y. The quotient's rounding error e is folded back in as
// e/(1+q²).
func atan2Core(y, x float64, p *precision) float64 {
	if isNaN(x) || isNaN(y) {
		return x + y
	}
	if x == 1 {
		return atanCore(y, p)
	}
	m := 0
	if stdmath.Signbit(y) {
		m |= 1
	}
	if stdmath.Signbit(x) {
		m |= 2
	}

	switch {
	case y == 0:
		if x == 0 || m&2 == 0 {
			return y
		}
		return stdmath.Copysign(asinPi, y)
	case x == 0:
		return stdmath.Copysign(asinPio2Hi, y)
	case isInf(x):
		if isInf(y) {
			return [4]float64{asinPio4Hi, -asinPio4Hi, 3 * asinPio4Hi, -3 * asinPio4Hi}[m]
		}
		return [4]float64{0, stdmath.Copysign(0, -1), asinPi, -asinPi}[m]
	case isInf(y):
		return stdmath.Copysign(asinPio2Hi, y)
	}

	_, ey := hwy.Frexp(y)
	_, ex := hwy.Frexp(x)
	var z float64
	switch k := ey - ex; {
	case k > atan2Ratio:
		z = asinPio2Hi + 0.5*asinPio2Lo
		m &= 1
	case m&2 != 0 && k < -atan2Ratio:
		z = 0
	default:
		ay, ax := stdmath.Abs(y), stdmath.Abs(x)
		q := ay / ax
		e := stdmath.FMA(-q, ax, ay) / ax
		z = atanCore(q, p) + e/(1.0+q*q)
	}
	switch m {
	case 0:
		return z
	case 1:
		return -z
	case 2:
		return asinPi - (z - asinPiLo)
	}
	return (z - asinPiLo) - asinPi
}

// Atan computes atan(x) for each element in the vector.
//
// Special cases:
//   - Atan(±0) = ±0
//   - Atan(±Inf) = ±π/2
//   - Atan(NaN) = NaN
func Atan[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, AtanScalar[T])
}

// Atan2 computes atan2(y, x) lane by lane. y and x must have the same width.
//
// Special cases:
//   - Atan2(±0, ±0) = ±0 (the sign of y)
//   - Atan2(±0, x<0) = ±π
//   - Atan2(y>0, 0) = π/2, Atan2(y<0, 0) = −π/2
//   - Atan2(NaN, x) = Atan2(y, NaN) = NaN
func Atan2[T hwy.Floats](y, x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map2(y, x, Atan2Scalar[T])
}
