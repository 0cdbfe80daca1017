package accuracy

import (
	"math"
	"math/big"

	"github.com/go-highway/hwymath/hwy"
	"github.com/go-highway/hwymath/hwy/contrib/math/oracle"
)

// ULP measures how far test lies from the reference, in units of the
// spacing between test and the next representable value of T above it.
//
//   - NaN against a NaN reference is 0.
//   - An infinity against a same-signed infinite reference is 0; against
//     the opposite sign it is NaN.
//   - A finite value against an infinite reference, or the reverse, is +Inf.
//   - Any other NaN mismatch is NaN.
//
// At the largest finite value the spacing is taken toward −Inf.
func ULP[T hwy.Floats](test T, ref oracle.Value) float64 {
	t := float64(test)
	switch {
	case math.IsNaN(t) && ref.NaN:
		return 0
	case math.IsNaN(t) || ref.NaN || ref.F == nil:
		return math.NaN()
	case math.IsInf(t, 0) && ref.IsInf(0):
		if math.Signbit(t) == ref.F.Signbit() {
			return 0
		}
		return math.NaN()
	case math.IsInf(t, 0) || ref.IsInf(0):
		return math.Inf(1)
	}

	prec := max(ref.F.Prec(), 64) + 64
	up := hwy.NextUp(test)
	if math.IsInf(float64(up), 0) {
		up = -hwy.NextUp(-test)
	}
	spacing := new(big.Float).SetPrec(prec).SetFloat64(float64(up))
	spacing.Sub(spacing, new(big.Float).SetFloat64(t))
	spacing.Abs(spacing)

	diff := new(big.Float).SetPrec(prec).SetFloat64(t)
	diff.Sub(diff, ref.F)
	diff.Abs(diff)

	u, _ := diff.Quo(diff, spacing).Float64()
	return u
}

// LanesULP returns the largest ULP over the lanes of v, each measured
// against ref, and the lane it came from. A NaN measurement dominates.
func LanesULP[T hwy.Floats](v hwy.Vec[T], ref oracle.Value) (ulp float64, lane int) {
	if nan := hwy.IsNaN(v); !ref.NaN && !hwy.AllFalse(nan) {
		for i := range nan.NumLanes() {
			if nan.GetBit(i) {
				return math.NaN(), i
			}
		}
	}
	for i := range v.NumLanes() {
		u := ULP(v.Lane(i), ref)
		if i == 0 || worse(u, ulp) {
			ulp, lane = u, i
		}
	}
	return ulp, lane
}

// worse reports whether a is a worse measurement than b.
func worse(a, b float64) bool {
	if math.IsNaN(b) {
		return false
	}
	return math.IsNaN(a) || a > b
}
