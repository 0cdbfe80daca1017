package math

import (
	"unsafe"

	"github.com/go-highway/hwymath/hwy"
)

// Scalar entry points. The binary32 forms evaluate in binary64 and round
// once; every function shares its core with the vector and slice forms.

// Sin32Scalar computes sin(x) for a single float32.
func Sin32Scalar(x float32) float32 { return sin32(x) }

// Sin64Scalar computes sin(x) for a single float64.
func Sin64Scalar(x float64) float64 { return sin64(x) }

// Cos32Scalar computes cos(x) for a single float32.
func Cos32Scalar(x float32) float32 { return cos32(x) }

// Cos64Scalar computes cos(x) for a single float64.
func Cos64Scalar(x float64) float64 { return cos64(x) }

// SinCos32Scalar computes sin(x) and cos(x) for a single float32.
func SinCos32Scalar(x float32) (sin, cos float32) { return sincos32(x) }

// SinCos64Scalar computes sin(x) and cos(x) for a single float64.
func SinCos64Scalar(x float64) (sin, cos float64) { return sincos64(x) }

// Tan32Scalar computes tan(x) for a single float32.
func Tan32Scalar(x float32) float32 { return tan32(x) }

// Tan64Scalar computes tan(x) for a single float64.
func Tan64Scalar(x float64) float64 { return tan64(x) }

// Asin32Scalar computes asin(x) for a single float32.
func Asin32Scalar(x float32) float32 { return float32(asinCore(float64(x), prec32)) }

// Asin64Scalar computes asin(x) for a single float64.
func Asin64Scalar(x float64) float64 { return asinCore(x, prec64) }

// Acos32Scalar computes acos(x) for a single float32.
func Acos32Scalar(x float32) float32 { return float32(acosCore(float64(x), prec32)) }

// Acos64Scalar computes acos(x) for a single float64.
func Acos64Scalar(x float64) float64 { return acosCore(x, prec64) }

// Atan32Scalar computes atan(x) for a single float32.
func Atan32Scalar(x float32) float32 { return float32(atanCore(float64(x), prec32)) }

// Atan64Scalar computes atan(x) for a single float64.
func Atan64Scalar(x float64) float64 { return atanCore(x, prec64) }

// Atan2_32Scalar computes atan2(y, x) for float32 operands.
func Atan2_32Scalar(y, x float32) float32 {
	return float32(atan2Core(float64(y), float64(x), prec32))
}

// Atan2_64Scalar computes atan2(y, x) for float64 operands.
func Atan2_64Scalar(y, x float64) float64 { return atan2Core(y, x, prec64) }

// Exp32Scalar computes e^x for a single float32.
func Exp32Scalar(x float32) float32 { return roundTo[float32](expCore(float64(x), prec32)) }

// Exp64Scalar computes e^x for a single float64.
func Exp64Scalar(x float64) float64 { return expCore(x, prec64) }

// Exp2_32Scalar computes 2^x for a single float32.
func Exp2_32Scalar(x float32) float32 { return roundTo[float32](exp2Core(float64(x), prec32)) }

// Exp2_64Scalar computes 2^x for a single float64.
func Exp2_64Scalar(x float64) float64 { return exp2Core(x, prec64) }

// Exp10_32Scalar computes 10^x for a single float32.
func Exp10_32Scalar(x float32) float32 { return roundTo[float32](exp10Core(float64(x), prec32)) }

// Exp10_64Scalar computes 10^x for a single float64.
func Exp10_64Scalar(x float64) float64 { return exp10Core(x, prec64) }

// Log32Scalar computes ln(x) for a single float32.
func Log32Scalar(x float32) float32 { return float32(logCore(float64(x), prec32)) }

// Log64Scalar computes ln(x) for a single float64.
func Log64Scalar(x float64) float64 { return logCore(x, prec64) }

// Log2_32Scalar computes log₂(x) for a single float32.
func Log2_32Scalar(x float32) float32 { return float32(log2Core(float64(x), prec32)) }

// Log2_64Scalar computes log₂(x) for a single float64.
func Log2_64Scalar(x float64) float64 { return log2Core(x, prec64) }

// Log10_32Scalar computes log₁₀(x) for a single float32.
func Log10_32Scalar(x float32) float32 { return float32(log10Core(float64(x), prec32)) }

// Log10_64Scalar computes log₁₀(x) for a single float64.
func Log10_64Scalar(x float64) float64 { return log10Core(x, prec64) }

// Generic scalar forms, used as the per-lane functions of the vector API.

func is32[T hwy.Floats]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// unary picks the binary32 or binary64 implementation for T.
func unary[T hwy.Floats](x T, f32 func(float32) float32, f64 func(float64) float64) T {
	if is32[T]() {
		return T(f32(float32(x)))
	}
	return T(f64(float64(x)))
}

// SinScalar computes sin(x) at the precision of T.
func SinScalar[T hwy.Floats](x T) T { return unary(x, sin32, sin64) }

// CosScalar computes cos(x) at the precision of T.
func CosScalar[T hwy.Floats](x T) T { return unary(x, cos32, cos64) }

// SinCosScalar computes sin(x) and cos(x) at the precision of T.
func SinCosScalar[T hwy.Floats](x T) (sin, cos T) {
	if is32[T]() {
		s, c := sincos32(float32(x))
		return T(s), T(c)
	}
	s, c := sincos64(float64(x))
	return T(s), T(c)
}

// TanScalar computes tan(x) at the precision of T.
func TanScalar[T hwy.Floats](x T) T { return unary(x, tan32, tan64) }

// AsinScalar computes asin(x) at the precision of T.
func AsinScalar[T hwy.Floats](x T) T { return unary(x, Asin32Scalar, Asin64Scalar) }

// AcosScalar computes acos(x) at the precision of T.
func AcosScalar[T hwy.Floats](x T) T { return unary(x, Acos32Scalar, Acos64Scalar) }

// AtanScalar computes atan(x) at the precision of T.
func AtanScalar[T hwy.Floats](x T) T { return unary(x, Atan32Scalar, Atan64Scalar) }

// Atan2Scalar computes atan2(y, x) at the precision of T.
func Atan2Scalar[T hwy.Floats](y, x T) T {
	if is32[T]() {
		return T(Atan2_32Scalar(float32(y), float32(x)))
	}
	return T(Atan2_64Scalar(float64(y), float64(x)))
}

// ExpScalar computes e^x at the precision of T.
func ExpScalar[T hwy.Floats](x T) T { return unary(x, Exp32Scalar, Exp64Scalar) }

// Exp2Scalar computes 2^x at the precision of T.
func Exp2Scalar[T hwy.Floats](x T) T { return unary(x, Exp2_32Scalar, Exp2_64Scalar) }

// Exp10Scalar computes 10^x at the precision of T.
func Exp10Scalar[T hwy.Floats](x T) T { return unary(x, Exp10_32Scalar, Exp10_64Scalar) }

// LogScalar computes ln(x) at the precision of T.
func LogScalar[T hwy.Floats](x T) T { return unary(x, Log32Scalar, Log64Scalar) }

// Log2Scalar computes log₂(x) at the precision of T.
func Log2Scalar[T hwy.Floats](x T) T { return unary(x, Log2_32Scalar, Log2_64Scalar) }

// Log10Scalar computes log₁₀(x) at the precision of T.
func Log10Scalar[T hwy.Floats](x T) T { return unary(x, Log10_32Scalar, Log10_64Scalar) }
