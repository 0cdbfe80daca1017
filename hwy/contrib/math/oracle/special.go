package oracle

import (
	"math"
	"math/big"
)

func nan() float64 { return math.NaN() }

// outcome is a special-case result: either an exact value or the rational
// multiple num/den of π, which the engine scales at working precision.
type outcome struct {
	v        Value
	num, den int64
}

func (o outcome) isPi() bool { return o.den != 0 }

func exact(x float64) outcome {
	if math.IsNaN(x) {
		return outcome{v: NaNValue()}
	}
	return outcome{v: Value{F: new(big.Float).SetFloat64(x)}}
}

func piTimes(num, den int64) outcome { return outcome{num: num, den: den} }

func sign(x float64) int64 {
	if math.Signbit(x) {
		return -1
	}
	return 1
}

// resolve handles arguments whose result is fixed by IEEE 754 conventions
// or is a known multiple of π. ok is false when the engine must evaluate.
func resolve(fn string, args []float64) (o outcome, ok bool) {
	x := args[0]
	if fn == "atan2" {
		return resolveAtan2(x, args[1])
	}
	if math.IsNaN(x) {
		return exact(nan()), true
	}
	switch fn {
	case "sin", "tan":
		switch {
		case math.IsInf(x, 0):
			return exact(nan()), true
		case x == 0:
			return exact(x), true
		}
	case "cos":
		switch {
		case math.IsInf(x, 0):
			return exact(nan()), true
		case x == 0:
			return exact(1), true
		}
	case "asin":
		switch {
		case math.Abs(x) > 1:
			return exact(nan()), true
		case x == 0:
			return exact(x), true
		case math.Abs(x) == 1:
			return piTimes(sign(x), 2), true
		}
	case "acos":
		switch {
		case math.Abs(x) > 1:
			return exact(nan()), true
		case x == 1:
			return exact(0), true
		case x == -1:
			return piTimes(1, 1), true
		case x == 0:
			return piTimes(1, 2), true
		}
	case "atan":
		switch {
		case math.IsInf(x, 0):
			return piTimes(sign(x), 2), true
		case x == 0:
			return exact(x), true
		}
	case "exp", "exp2", "exp10":
		switch {
		case math.IsInf(x, 1):
			return exact(x), true
		case math.IsInf(x, -1):
			return exact(0), true
		case x == 0:
			return exact(1), true
		}
	case "log", "log2", "log10":
		switch {
		case x < 0:
			return exact(nan()), true
		case x == 0:
			return exact(math.Inf(-1)), true
		case math.IsInf(x, 1):
			return exact(x), true
		case x == 1:
			return exact(0), true
		}
	}
	return outcome{}, false
}

// resolveAtan2 follows the IEEE 754 table for atan2(y, x).
func resolveAtan2(y, x float64) (outcome, bool) {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return exact(nan()), true
	case y == 0:
		if math.Signbit(x) {
			return piTimes(sign(y), 1), true
		}
		return exact(y), true
	case math.IsInf(y, 0) && math.IsInf(x, 0):
		if x > 0 {
			return piTimes(sign(y), 4), true
		}
		return piTimes(3*sign(y), 4), true
	case math.IsInf(y, 0) || x == 0:
		return piTimes(sign(y), 2), true
	case math.IsInf(x, 1):
		return exact(math.Copysign(0, y)), true
	case math.IsInf(x, -1):
		return piTimes(sign(y), 1), true
	}
	return outcome{}, false
}
