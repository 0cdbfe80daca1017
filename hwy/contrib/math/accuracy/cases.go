package accuracy

import "math"

// Tolerance holds the bounds that differ between builds.
type Tolerance struct {
	// Arc bounds asin, acos, atan and atan2.
	Arc float64
	// TanWide bounds binary32 tan over [-100, 100).
	TanWide float64
}

// DefaultTolerance is the tolerance used when none is configured.
var DefaultTolerance = Tolerance{Arc: 2.0, TanWide: 3.0}

// Case is one sweep: a function, the types it is checked at, the argument
// axes and the exclusive ULP bound every measurement must stay under.
type Case struct {
	Name  string
	Func  string
	Types []Type
	Axes  []Axis
	Bound float64
}

// Points returns the argument points of c.
func (c Case) Points() [][]float64 { return Points(c.Axes) }

var (
	twoPi      = Range{Start: 0, End: 2 * math.Pi, Step: 0.05}
	twoPiFine  = Range{Start: 0, End: 2 * math.Pi, Step: 0.01}
	hundred    = Range{Start: -100, End: 100, Step: 0.5}
	unit       = Range{Start: -1, End: 1, Step: 0.05}
	unitCoarse = Range{Start: -1, End: 1, Step: 0.1}
	logDomain  = Range{Start: 0, End: 100, Step: 0.5}
	expDomain  = Range{Start: -10, End: 10, Step: 0.05}
)

func unaryCase(fn string, types []Type, r Range, bound float64) Case {
	return Case{
		Name:  fn + " " + r.String(),
		Func:  fn,
		Types: types,
		Axes:  []Axis{RangeAxis("x", r)},
		Bound: bound,
	}
}

// DefaultCases returns the standard accuracy matrix.
func DefaultCases(tol Tolerance) []Case {
	f32 := []Type{F32}
	cases := []Case{
		unaryCase("sin", AllTypes, twoPi, 2),
		unaryCase("cos", AllTypes, twoPi, 2),
		unaryCase("sin", AllTypes, hundred, 2),
		unaryCase("cos", AllTypes, hundred, 2),
		unaryCase("tan", f32, twoPiFine, 2),
		unaryCase("tan", f32, hundred, tol.TanWide),
		unaryCase("asin", AllTypes, unit, tol.Arc),
		unaryCase("acos", AllTypes, unit, tol.Arc),
		unaryCase("atan", AllTypes, unit, tol.Arc),
		{
			Name:  "atan2 " + unitCoarse.String() + "²",
			Func:  "atan2",
			Types: AllTypes,
			Axes:  []Axis{RangeAxis("y", unitCoarse), RangeAxis("x", unitCoarse)},
			Bound: tol.Arc,
		},
		unaryCase("log", ScalarTypes, logDomain, 2),
		unaryCase("log2", ScalarTypes, logDomain, 3),
		unaryCase("log10", ScalarTypes, logDomain, 3),
		unaryCase("exp", ScalarTypes, expDomain, 2),
		unaryCase("exp2", ScalarTypes, expDomain, 3),
		unaryCase("exp10", ScalarTypes, expDomain, 3),
	}
	return cases
}
