package math

import (
	stdmath "math"

	"github.com/go-highway/hwymath/hwy"
)

// Special-value policy shared by every family. Domain violations return
// NaN, range violations saturate to ±Inf or ±0. Nothing panics and nothing
// returns an error.

// float32Overflow is the smallest binary64 value that rounds to +Inf in
// binary32: halfway between MaxFloat32 and 2^128.
const float32Overflow = 0x1.ffffffp127

// roundTo rounds a binary64 working value to T. Values beyond the binary32
// range saturate to a signed infinity.
func roundTo[T hwy.Floats](d float64) T {
	if is32[T]() {
		switch {
		case d >= float32Overflow:
			return T(stdmath.Inf(1))
		case d <= -float32Overflow:
			return T(stdmath.Inf(-1))
		}
	}
	return T(d)
}

func isNaN(x float64) bool { return x != x }

func isInf(x float64) bool { return x-x != 0 && x == x }

// trigSpecial resolves sin, cos and tan for NaN and infinite arguments.
func trigSpecial(x float64) (float64, bool) {
	switch {
	case isNaN(x):
		return x, true
	case isInf(x):
		return stdmath.NaN(), true
	}
	return 0, false
}

// logSpecial resolves the logarithms outside (0, +Inf) and at 1.
func logSpecial(x float64) (float64, bool) {
	switch {
	case isNaN(x):
		return x, true
	case x < 0:
		return stdmath.NaN(), true
	case x == 0:
		return stdmath.Inf(-1), true
	case isInf(x):
		return x, true
	case x == 1:
		return 0, true
	}
	return 0, false
}

// arcSpecial resolves asin and acos outside [-1, 1].
func arcSpecial(x float64) (float64, bool) {
	switch {
	case isNaN(x):
		return x, true
	case x > 1 || x < -1:
		return stdmath.NaN(), true
	}
	return 0, false
}
