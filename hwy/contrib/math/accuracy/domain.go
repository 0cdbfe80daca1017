package accuracy

import "fmt"

// Range is an end-exclusive arithmetic sequence of sample arguments.
type Range struct {
	Start, End, Step float64
}

// Values returns Start + i·Step for i = 0, 1, … while the value is below
// End. Each value is computed from its index so rounding does not
// accumulate. A non-positive Step yields no values.
func (r Range) Values() []float64 {
	if !(r.Step > 0) {
		return nil
	}
	var out []float64
	for i := 0; ; i++ {
		v := r.Start + float64(i)*r.Step
		if !(v < r.End) {
			return out
		}
		out = append(out, v)
	}
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g) step %g", r.Start, r.End, r.Step)
}

// Axis is one named dimension of a test matrix.
type Axis struct {
	Name   string
	Values []float64
}

// RangeAxis returns an axis sampling r.
func RangeAxis(name string, r Range) Axis {
	return Axis{Name: name, Values: r.Values()}
}

// Points returns the cross product of axes in row-major order: the last
// axis varies fastest. Each point is a fresh slice with one value per axis.
func Points(axes []Axis) [][]float64 {
	if len(axes) == 0 {
		return nil
	}
	n := 1
	for _, a := range axes {
		n *= len(a.Values)
	}
	points := make([][]float64, 0, n)
	idx := make([]int, len(axes))
	for range n {
		p := make([]float64, len(axes))
		for j, a := range axes {
			p[j] = a.Values[idx[j]]
		}
		points = append(points, p)
		for j := len(axes) - 1; j >= 0; j-- {
			idx[j]++
			if idx[j] < len(axes[j].Values) {
				break
			}
			idx[j] = 0
		}
	}
	return points
}

// Matrix calls fn for every point of the cross product of axes, in the
// order of Points, and stops at the first error.
func Matrix(axes []Axis, fn func(point []float64) error) error {
	for _, p := range Points(axes) {
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}
