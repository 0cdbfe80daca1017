// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package math provides elementary transcendental functions with bounded
// error for float32 and float64 scalars, vectors and slices.
// This package corresponds to Google Highway's hwy/contrib/math directory.
//
// # Functions
//
// Trigonometric:
//   - Sin, Cos, Tan, SinCos
//
// Inverse trigonometric:
//   - Asin, Acos, Atan, Atan2
//
// Exponential and logarithmic:
//   - Exp, Exp2, Exp10 - e^x, 2^x, 10^x
//   - Log, Log2, Log10 - ln(x), log₂(x), log₁₀(x)
//
// Each function comes in three shapes sharing one scalar core:
//   - Scalar: Sin32Scalar(float32), Sin64Scalar(float64), SinScalar[T](T)
//   - Vector: Sin[T](hwy.Vec[T]) for any supported width (1, 2, 4, 8, 16)
//   - Slice: BaseSinPoly[T](input, output []T)
//
// Lanes are computed independently, so a vector result is bit-identical
// to applying the scalar form to each lane.
//
// # Accuracy
//
// float64 functions use extended-precision range reduction and minimax
// kernels; float32 functions evaluate the same reductions in float64 with
// shorter tables and round once. Over the default matrix of package
// accuracy (run with cmd/ulpcheck against a 128-bit reference) every
// function and width stays under its bound:
//   - sin, cos, exp, log, and tan on [0, 2π): < 2 ULP
//   - asin, acos, atan, atan2 on [-1, 1]: < 2 ULP (atan2 peaks near 1 ULP)
//   - exp2, exp10, log2, log10, and float32 tan on [-100, 100): < 3 ULP
//
// Trigonometric reduction is exact for every finite argument, including
// |x| near MaxFloat64.
//
// # Special values
//
// Domain errors return NaN, overflow saturates to ±Inf and underflow to
// ±0. NaN inputs propagate. No function panics or returns an error.
//
// # Example Usage
//
//	import (
//	    "github.com/go-highway/hwymath/hwy"
//	    "github.com/go-highway/hwymath/hwy/contrib/math"
//	)
//
//	v := hwy.LoadN(data, hwy.W8)
//	s, c := math.SinCos(v)
//
//	out := make([]float32, len(data))
//	math.BaseExpPoly(data, out)
package math
