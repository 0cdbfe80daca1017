package math

import (
	stdmath "math"

	"github.com/go-highway/hwymath/hwy"
)

// expReduced returns e^(hi−lo)·2^k. hi − lo is the reduced argument r with
// |r| ≤ ln2/2 and lo carrying the bits hi cannot.
//
// e^r = 1 + r + r·c/(2−c) where c = r − r²·P(r²), a rational form whose
// leading term is exact. The power of two is applied on the exponent field.
func expReduced(hi, lo float64, k int, p *precision) float64 {
	r := hi - lo
	t := r * r
	c := r - t*horner(t, p.exp)
	if k == 0 {
		return 1.0 - ((r*c)/(c-2.0) - r)
	}
	y := 1.0 - ((lo - (r*c)/(2.0-c)) - hi)
	return hwy.ScaleB(y, k)
}

// expCore computes e^x in binary64: x = k·ln2 + r with ln2 split so that
// k·ln2Hi is exact.
func expCore(x float64, p *precision) float64 {
	switch {
	case isNaN(x):
		return x
	case x > expOverflow:
		return stdmath.Inf(1)
	case x < expUnderflow:
		return 0
	case stdmath.Abs(x) < expTinyArg:
		return 1.0 + x
	}
	kf := stdmath.RoundToEven(x * expInvLn2)
	hi := x - kf*expLn2Hi
	lo := kf * expLn2Lo
	return expReduced(hi, lo, int(kf), p)
}

// exp2Core computes 2^x in binary64: x = n + f with |f| ≤ 1/2 exactly,
// then 2^f = e^(f·ln2) with the product carried to double-double.
func exp2Core(x float64, p *precision) float64 {
	switch {
	case isNaN(x):
		return x
	case x >= exp2Overflow:
		return stdmath.Inf(1)
	case x <= exp2Underflow:
		return 0
	}
	n := stdmath.RoundToEven(x)
	f := x - n
	hi := f * expLn2
	lo := -(stdmath.FMA(f, expLn2, -hi) + f*expLn2Tail)
	return expReduced(hi, lo, int(n), p)
}

// exp10Core computes 10^x in binary64. x·ln10 = h + e is formed exactly,
// then reduced by k·ln2 like e^x. h − k·ln2Hi is exact by Sterbenz.
func exp10Core(x float64, p *precision) float64 {
	switch {
	case isNaN(x):
		return x
	case x > exp10Overflow:
		return stdmath.Inf(1)
	case x < exp10Underflow:
		return 0
	}
	h := x * expLn10
	e := stdmath.FMA(x, expLn10, -h) + x*expLn10Lo
	kf := stdmath.RoundToEven(h * expInvLn2)
	hi := h - kf*expLn2Hi
	lo := kf*expLn2Lo - e
	return expReduced(hi, lo, int(kf), p)
}

// Exp computes e^x for each element in the vector.
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
//   - Exp(x) = +Inf on overflow, 0 on underflow
func Exp[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, ExpScalar[T])
}

// Exp2 computes 2^x for each element in the vector.
//
// Special cases:
//   - Exp2(+Inf) = +Inf
//   - Exp2(-Inf) = 0
//   - Exp2(NaN) = NaN
//   - Exp2(n) = 2^n exactly for integer n in range
func Exp2[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, Exp2Scalar[T])
}

// Exp10 computes 10^x for each element in the vector.
//
// Special cases:
//   - Exp10(+Inf) = +Inf
//   - Exp10(-Inf) = 0
//   - Exp10(NaN) = NaN
func Exp10[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, Exp10Scalar[T])
}
