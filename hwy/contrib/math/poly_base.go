package math

import "github.com/go-highway/hwymath/hwy"

// horner evaluates c[0] + x·(c[1] + x·(c[2] + ...)).
func horner(x float64, c []float64) float64 {
	r := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}

// BasePolyN evaluates the polynomial with coefficients c (lowest degree
// first) at every element of x using Horner's method, writing
// min(len(x), len(result)) results. The evaluation runs in binary64
// working precision and is rounded once to T.
func BasePolyN[T hwy.Floats](x []T, c []float64, result []T) {
	size := min(len(x), len(result))
	if len(c) == 0 {
		clear(result[:size])
		return
	}
	for i := range size {
		result[i] = roundTo[T](horner(float64(x[i]), c))
	}
}
