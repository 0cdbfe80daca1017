package math

import (
	stdmath "math"

	"github.com/go-highway/hwymath/hwy"
)

// kernelTan returns tan(x + y) when odd is false and −1/tan(x + y) when odd
// is true, for |x + y| ≤ π/4. Above tanThreshold the argument is reflected
// to π/4 − x so the series stays short.
func kernelTan(x, y float64, odd bool) float64 {
	t := tanCoeffs_f64
	big := stdmath.Abs(x) >= tanThreshold
	neg := x < 0
	if big {
		if neg {
			x, y = -x, -y
		}
		z := trigPiOver4 - x
		w := trigPiOver4Lo - y
		x, y = z+w, 0
	}
	z := x * x
	w := z * z
	r := t[1] + w*(t[3]+w*(t[5]+w*(t[7]+w*(t[9]+w*t[11]))))
	v := z * (t[2] + w*(t[4]+w*(t[6]+w*(t[8]+w*(t[10]+w*t[12])))))
	s := z * x
	r = y + z*(s*(r+v)+y)
	r += t[0] * s
	w = x + r
	if big {
		iy := 1.0
		if odd {
			iy = -1.0
		}
		res := iy - 2.0*(x-(w*w/(w+iy)-r))
		if neg {
			return -res
		}
		return res
	}
	if !odd {
		return w
	}
	// −1/(x+r) with the quotient refined from truncated halves.
	z = hwy.TruncateMantissa(w, highWordBits)
	v = r - (z - x)
	a := -1.0 / w
	tt := hwy.TruncateMantissa(a, highWordBits)
	s = 1.0 + tt*z
	return tt + a*(s+tt*v)
}

func tan64(x float64) float64 {
	if x == 0 {
		return x
	}
	if r, ok := trigSpecial(x); ok {
		return r
	}
	if stdmath.Abs(x) <= trigPiOver4 {
		if stdmath.Abs(x) < trigTinyArg {
			return x
		}
		return kernelTan(x, 0, false)
	}
	n, hi, lo := reducePio2(x)
	return kernelTan(hi, lo, n&1 == 1)
}

// tan32 divides the binary64 sine and cosine kernels. cos(r) ≥ √2/2 on the
// reduced interval; in odd quadrants a zero sine yields a signed infinity.
func tan32(x float32) float32 {
	d := float64(x)
	if d == 0 {
		return x
	}
	if r, ok := trigSpecial(d); ok {
		return float32(r)
	}
	n, r := reduce32(d)
	s, c := kernelSin32(r), kernelCos32(r)
	if n&1 == 1 {
		return roundTo[float32](-c / s)
	}
	return roundTo[float32](s / c)
}

// Tan computes tan(x) for each element in the vector.
//
// Special cases:
//   - Tan(±0) = ±0
//   - Tan(±Inf) = NaN
//   - Tan(NaN) = NaN
//   - Tan(x) approaches ±Inf as x approaches odd multiples of π/2
func Tan[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, TanScalar[T])
}
