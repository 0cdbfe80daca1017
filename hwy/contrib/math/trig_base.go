package math

import (
	stdmath "math"

	"github.com/go-highway/hwymath/hwy"
)

// kernelSin returns sin(x + y) for |x + y| ≤ π/4, where y is the low part
// of a reduced argument (0 for an exact argument).
func kernelSin(x, y float64, p *precision) float64 {
	s := p.sin
	z := x * x
	r := horner(z, s[1:])
	v := z * x
	if y == 0 {
		return x + v*(s[0]+z*r)
	}
	return x - ((z*(0.5*y-v*r) - y) - v*s[0])
}

// kernelCos returns cos(x + y) for |x + y| ≤ π/4. 1 - z/2 is computed with
// its rounding error carried separately.
func kernelCos(x, y float64, p *precision) float64 {
	z := x * x
	r := z * horner(z, p.cos)
	hz := 0.5 * z
	w := 1.0 - hz
	return w + (((1.0 - w) - hz) + (z*r - x*y))
}

// kernelSin32 and kernelCos32 evaluate the short binary32 tables in
// binary64 arithmetic.
func kernelSin32(r float64) float64 {
	z := r * r
	return r + r*z*horner(z, prec32.sin)
}

func kernelCos32(r float64) float64 {
	z := r * r
	return 1.0 + z*horner(z, prec32.cos)
}

// quadrantSin picks sin(x) from sin(r) and cos(r) for x = n·π/2 + r.
// cos(x) is quadrantSin(n+1, ...).
func quadrantSin(n int, s, c float64) float64 {
	switch n & 3 {
	case 0:
		return s
	case 1:
		return c
	case 2:
		return -s
	}
	return -c
}

func sin64(x float64) float64 {
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
		return kernelSin(x, 0, prec64)
	}
	n, hi, lo := reducePio2(x)
	switch n & 3 {
	case 0:
		return kernelSin(hi, lo, prec64)
	case 1:
		return kernelCos(hi, lo, prec64)
	case 2:
		return -kernelSin(hi, lo, prec64)
	}
	return -kernelCos(hi, lo, prec64)
}

func cos64(x float64) float64 {
	if r, ok := trigSpecial(x); ok {
		return r
	}
	if stdmath.Abs(x) <= trigPiOver4 {
		if stdmath.Abs(x) < trigTinyArg {
			return 1
		}
		return kernelCos(x, 0, prec64)
	}
	n, hi, lo := reducePio2(x)
	switch n & 3 {
	case 0:
		return kernelCos(hi, lo, prec64)
	case 1:
		return -kernelSin(hi, lo, prec64)
	case 2:
		return -kernelCos(hi, lo, prec64)
	}
	return kernelSin(hi, lo, prec64)
}

func sincos64(x float64) (sin, cos float64) {
	if x == 0 {
		return x, 1
	}
	if r, ok := trigSpecial(x); ok {
		return r, r
	}
	if stdmath.Abs(x) <= trigPiOver4 {
		return kernelSin(x, 0, prec64), kernelCos(x, 0, prec64)
	}
	n, hi, lo := reducePio2(x)
	s, c := kernelSin(hi, lo, prec64), kernelCos(hi, lo, prec64)
	return quadrantSin(n, s, c), quadrantSin(n+1, s, c)
}

// reduce32 reduces a binary32 argument in binary64 and collapses the
// remainder to one double.
func reduce32(d float64) (n int, r float64) {
	if stdmath.Abs(d) <= trigPiOver4 {
		return 0, d
	}
	n, hi, lo := reducePio2(d)
	return n, hi + lo
}

func sin32(x float32) float32 {
	d := float64(x)
	if d == 0 {
		return x
	}
	if r, ok := trigSpecial(d); ok {
		return float32(r)
	}
	n, r := reduce32(d)
	if n&1 == 0 {
		return float32(quadrantSin(n, kernelSin32(r), 0))
	}
	return float32(quadrantSin(n, 0, kernelCos32(r)))
}

func cos32(x float32) float32 {
	d := float64(x)
	if r, ok := trigSpecial(d); ok {
		return float32(r)
	}
	n, r := reduce32(d)
	if n&1 == 0 {
		return float32(quadrantSin(n+1, 0, kernelCos32(r)))
	}
	return float32(quadrantSin(n+1, kernelSin32(r), 0))
}

func sincos32(x float32) (sin, cos float32) {
	d := float64(x)
	if d == 0 {
		return x, 1
	}
	if r, ok := trigSpecial(d); ok {
		return float32(r), float32(r)
	}
	n, r := reduce32(d)
	s, c := kernelSin32(r), kernelCos32(r)
	return float32(quadrantSin(n, s, c)), float32(quadrantSin(n+1, s, c))
}

// Sin computes sin(x) for each element in the vector.
//
// Algorithm: k = round(x·2/π), r = x − k·π/2 with a multi-term π/2 for
// |x| < 2^20·π/2 and Payne–Hanek beyond, then a minimax kernel on r
// selected by k mod 4. Error is below 1 ULP for every finite input.
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func Sin[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, SinScalar[T])
}

// Cos computes cos(x) for each element in the vector.
//
// Special cases:
//   - Cos(±0) = 1
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func Cos[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map(v, CosScalar[T])
}

// SinCos computes both sin(x) and cos(x) for each element in the vector,
// sharing one range reduction per lane.
//
// Returns: (sin, cos) where each is a Vec[T] with the computed values.
func SinCos[T hwy.Floats](v hwy.Vec[T]) (sin, cos hwy.Vec[T]) {
	return hwy.MapPair(v, SinCosScalar[T])
}
