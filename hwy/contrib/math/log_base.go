package math

import "github.com/go-highway/hwymath/hwy"

// logReduced splits a positive finite x into 2^k·(1+f) with 1+f in
// [√2/2, √2), using the decomposer so subnormals are handled exactly.
func logReduced(x float64) (k float64, f float64) {
	m, e := hwy.Frexp(x)
	if m >= logSqrt2 {
		m *= 0.5
		e++
	}
	return float64(e), m - 1.0
}

// logKernel returns f²/2 and r = s·(f²/2 + R(s²)) with s = f/(2+f), so
// that log(1+f) = f − (f²/2 − r).
func logKernel(f float64, p *precision) (hfsq, r float64) {
	s := f / (2.0 + f)
	z := s * s
	R := z * horner(z, p.log)
	hfsq = 0.5 * f * f
	return hfsq, s * (hfsq + R)
}

// logSplit returns log(1+f) as hi + lo with hi truncated to the high word,
// so that multiplying hi by a short constant stays exact.
func logSplit(f float64, p *precision) (hi, lo float64) {
	hfsq, r := logKernel(f, p)
	hi = hwy.TruncateMantissa(f-hfsq, highWordBits)
	lo = (f - hi) - hfsq + r
	return hi, lo
}

func logCore(x float64, p *precision) float64 {
	if r, ok := logSpecial(x); ok {
		return r
	}
	k, f := logReduced(x)
	hfsq, r := logKernel(f, p)
	return k*expLn2Hi - ((hfsq - (r + k*expLn2Lo)) - f)
}

func log2Core(x float64, p *precision) float64 {
	if r, ok := logSpecial(x); ok {
		return r
	}
	k, f := logReduced(x)
	hi, lo := logSplit(f, p)
	valHi := hi * logInvLn2Hi
	valLo := (lo+hi)*logInvLn2Lo + lo*logInvLn2Hi
	w := k + valHi
	valLo += (k - w) + valHi
	return valLo + w
}

func log10Core(x float64, p *precision) float64 {
	if r, ok := logSpecial(x); ok {
		return r
	}
	k, f := logReduced(x)
	hi, lo := logSplit(f, p)
	valHi := hi * logInvLn10Hi
	y2 := k * logLog10_2Hi
	valLo := k*logLog10_2Lo + (lo+hi)*logInvLn10Lo + lo*logInvLn10Hi
	w := y2 + valHi
	valLo += (y2 - w) + valHi
	return valLo + w
}

// Log computes the natural logarithm ln(x) for each element in the vector.
//
// Algorithm: x = 2^k·(1+f) with 1+f in [√2/2, √2), then
// ln(x) = k·ln2 + f − f²/2 + s·(f²/2 + R(s²)), s = f/(2+f).
//
// Special cases:
//   - Log(1) = +0
//   - Log(±0) = -Inf
//   - Log(x<0) = NaN
//   - Log(+Inf) = +Inf
//   - Log(NaN) = NaN
func Log[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, LogScalar[T])
}

// Log2 computes log₂(x) for each element in the vector.
//
// Special cases match Log. Log2(2^n) = n exactly.
func Log2[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, Log2Scalar[T])
}

// Log10 computes log₁₀(x) for each element in the vector.
//
// Special cases match Log.
func Log10[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, Log10Scalar[T])
}
