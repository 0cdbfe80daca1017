package math

import "github.com/go-highway/hwymath/hwy"

// Slice kernels. Each processes min(len(input), len(output)) elements in
// vectors of the natural width and finishes the tail lane by lane. Results
// are identical to the scalar and vector forms element for element.

func baseUnary[T hwy.Floats](input, output []T, vec func(hwy.Vec[T]) hwy.Vec[T], scalar func(T) T) {
	size := min(len(input), len(output))
	w := hwy.NaturalWidth[T]()
	hwy.ProcessWithTail(size, w,
		func(offset int) {
			hwy.Store(vec(hwy.LoadN(input[offset:], w)), output[offset:])
		},
		func(offset, count int) {
			for i := range count {
				output[offset+i] = scalar(input[offset+i])
			}
		},
	)
}

// BaseSinPoly computes sin(x) for every element of input.
func BaseSinPoly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Sin[T], SinScalar[T])
}

// BaseCosPoly computes cos(x) for every element of input.
func BaseCosPoly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Cos[T], CosScalar[T])
}

// BaseTanPoly computes tan(x) for every element of input.
func BaseTanPoly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Tan[T], TanScalar[T])
}

// BaseSinCosPoly computes both sin(x) and cos(x) simultaneously.
// This is more efficient when both values are needed.
func BaseSinCosPoly[T hwy.Floats](input, sinOutput, cosOutput []T) {
	size := min(len(input), len(sinOutput), len(cosOutput))
	w := hwy.NaturalWidth[T]()
	hwy.ProcessWithTail(size, w,
		func(offset int) {
			s, c := SinCos(hwy.LoadN(input[offset:], w))
			hwy.Store(s, sinOutput[offset:])
			hwy.Store(c, cosOutput[offset:])
		},
		func(offset, count int) {
			for i := range count {
				sinOutput[offset+i], cosOutput[offset+i] = SinCosScalar(input[offset+i])
			}
		},
	)
}

// BaseAsinPoly computes asin(x) for every element of input.
func BaseAsinPoly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Asin[T], AsinScalar[T])
}

// BaseAcosPoly computes acos(x) for every element of input.
func BaseAcosPoly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Acos[T], AcosScalar[T])
}

// BaseAtanPoly computes atan(x) for every element of input.
func BaseAtanPoly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Atan[T], AtanScalar[T])
}

// BaseAtan2Poly computes atan2(y, x) element-wise over
// min(len(inputY), len(inputX), len(output)) elements.
func BaseAtan2Poly[T hwy.Floats](inputY, inputX, output []T) {
	size := min(len(inputY), len(inputX), len(output))
	w := hwy.NaturalWidth[T]()
	hwy.ProcessWithTail(size, w,
		func(offset int) {
			y := hwy.LoadN(inputY[offset:], w)
			x := hwy.LoadN(inputX[offset:], w)
			hwy.Store(Atan2(y, x), output[offset:])
		},
		func(offset, count int) {
			for i := range count {
				output[offset+i] = Atan2Scalar(inputY[offset+i], inputX[offset+i])
			}
		},
	)
}

// BaseExpPoly computes e^x for every element of input.
func BaseExpPoly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Exp[T], ExpScalar[T])
}

// BaseExp2Poly computes 2^x for every element of input.
func BaseExp2Poly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Exp2[T], Exp2Scalar[T])
}

// BaseExp10Poly computes 10^x for every element of input.
func BaseExp10Poly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Exp10[T], Exp10Scalar[T])
}

// BaseLogPoly computes ln(x) for every element of input.
func BaseLogPoly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Log[T], LogScalar[T])
}

// BaseLog2Poly computes log₂(x) for every element of input.
func BaseLog2Poly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Log2[T], Log2Scalar[T])
}

// BaseLog10Poly computes log₁₀(x) for every element of input.
func BaseLog10Poly[T hwy.Floats](input, output []T) {
	baseUnary(input, output, Log10[T], Log10Scalar[T])
}
