package hwy

import (
	"math"
	"unsafe"
)

// Layout describes an IEEE 754 binary interchange format.
type Layout struct {
	MantBits uint // stored fraction bits
	ExpBits  uint
	Bias     int
}

var (
	// Layout32 is binary32: 23 fraction bits, 8 exponent bits, bias 127.
	Layout32 = Layout{MantBits: 23, ExpBits: 8, Bias: 127}
	// Layout64 is binary64: 52 fraction bits, 11 exponent bits, bias 1023.
	Layout64 = Layout{MantBits: 52, ExpBits: 11, Bias: 1023}
)

// MaxExpField returns the all-ones exponent field used by Inf and NaN.
func (l Layout) MaxExpField() uint {
	return 1<<l.ExpBits - 1
}

// Precision returns the significand precision in bits, including the
// implicit leading bit.
func (l Layout) Precision() uint {
	return l.MantBits + 1
}

// LayoutOf returns the layout of T.
func LayoutOf[T Floats]() Layout {
	if is32[T]() {
		return Layout32
	}
	return Layout64
}

func is32[T Floats]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// Decompose returns the raw sign, biased exponent and fraction fields of x.
func Decompose[T Floats](x T) (sign, exp uint, mant uint64) {
	if is32[T]() {
		b := math.Float32bits(float32(x))
		return uint(b >> 31), uint(b>>23) & 0xff, uint64(b & (1<<23 - 1))
	}
	b := math.Float64bits(float64(x))
	return uint(b >> 63), uint(b>>52) & 0x7ff, b & (1<<52 - 1)
}

// Compose assembles a value from raw fields. Fields are masked to their
// widths. Compose(Decompose(x)) reproduces x bit for bit, NaN payloads
// included.
func Compose[T Floats](sign, exp uint, mant uint64) T {
	if is32[T]() {
		b := uint32(sign&1)<<31 | uint32(exp&0xff)<<23 | uint32(mant&(1<<23-1))
		return T(math.Float32frombits(b))
	}
	b := uint64(sign&1)<<63 | uint64(exp&0x7ff)<<52 | mant&(1<<52-1)
	return T(math.Float64frombits(b))
}

// Frexp splits x into m·2^e with |m| in [1, 2). Subnormals are normalised.
// Zero, infinities and NaN are returned unchanged with e = 0.
func Frexp[T Floats](x T) (m T, e int) {
	l := LayoutOf[T]()
	sign, exp, mant := Decompose(x)
	switch {
	case exp == l.MaxExpField():
		return x, 0
	case exp == 0:
		if mant == 0 {
			return x, 0
		}
		// Subnormal: shift the leading one into the implicit position.
		e = 1 - l.Bias
		for mant&(1<<l.MantBits) == 0 {
			mant <<= 1
			e--
		}
		return Compose[T](sign, uint(l.Bias), mant), e
	}
	return Compose[T](sign, uint(l.Bias), mant), int(exp) - l.Bias
}

// pow2 returns 2^k for k in the normal exponent range of T.
func pow2[T Floats](k int) T {
	l := LayoutOf[T]()
	return Compose[T](0, uint(k+l.Bias), 0)
}

// ScaleB returns x·2^n computed on the exponent field. The result is
// correctly rounded: overflow saturates to a signed infinity and underflow
// yields a correctly signed subnormal or zero. NaN, infinities and zeros
// pass through.
func ScaleB[T Floats](x T, n int) T {
	if x == 0 || x != x || x-x != 0 {
		return x
	}
	l := LayoutOf[T]()
	maxE := l.Bias
	minE := 1 - l.Bias
	// Pre-scaling into the subnormal range is done with p extra bits so the
	// final multiply rounds once.
	p := int(l.Precision())
	y := x
	if n > maxE {
		y *= pow2[T](maxE)
		n -= maxE
		if n > maxE {
			y *= pow2[T](maxE)
			n -= maxE
			if n > maxE {
				n = maxE
			}
		}
	} else if n < minE {
		y *= pow2[T](minE + p)
		n -= minE + p
		if n < minE {
			y *= pow2[T](minE + p)
			n -= minE + p
			if n < minE {
				n = minE
			}
		}
	}
	return y * pow2[T](n)
}

// NextUp returns the least representable value greater than x.
// NextUp(+Inf) = +Inf and NextUp(NaN) = NaN.
func NextUp[T Floats](x T) T {
	switch {
	case x != x:
		return x
	case x == 0:
		return Compose[T](0, 0, 1)
	}
	sign, exp, mant := Decompose(x)
	l := LayoutOf[T]()
	if sign == 0 && exp == l.MaxExpField() {
		return x
	}
	bits := uint64(exp)<<l.MantBits | mant
	if sign == 0 {
		bits++
	} else {
		bits--
	}
	return Compose[T](sign, uint(bits>>l.MantBits), bits&(1<<l.MantBits-1))
}

// TruncateMantissa clears all but the top keep fraction bits of x.
func TruncateMantissa[T Floats](x T, keep uint) T {
	l := LayoutOf[T]()
	if keep >= l.MantBits {
		return x
	}
	sign, exp, mant := Decompose(x)
	drop := l.MantBits - keep
	return Compose[T](sign, exp, mant>>drop<<drop)
}
