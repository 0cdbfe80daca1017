package accuracy

import (
	"fmt"
	"strings"

	"github.com/go-highway/hwymath/hwy"
)

// Type is an element precision together with a shape: scalar (Width 0) or
// a vector of Width lanes.
type Type struct {
	Name  string
	Bits  int
	Width hwy.Width
}

// Scalar reports whether t exercises the scalar entry points.
func (t Type) Scalar() bool { return t.Width == 0 }

func (t Type) String() string { return t.Name }

// Round rounds each argument to the element precision of t.
func (t Type) Round(args []float64) []float64 {
	out := make([]float64, len(args))
	for i, a := range args {
		if t.Bits == 32 {
			out[i] = float64(float32(a))
		} else {
			out[i] = a
		}
	}
	return out
}

var (
	F32    = Type{Name: "f32", Bits: 32}
	F64    = Type{Name: "f64", Bits: 64}
	F32x2  = Type{Name: "f32x2", Bits: 32, Width: hwy.W2}
	F32x4  = Type{Name: "f32x4", Bits: 32, Width: hwy.W4}
	F32x8  = Type{Name: "f32x8", Bits: 32, Width: hwy.W8}
	F32x16 = Type{Name: "f32x16", Bits: 32, Width: hwy.W16}
	F64x2  = Type{Name: "f64x2", Bits: 64, Width: hwy.W2}
	F64x4  = Type{Name: "f64x4", Bits: 64, Width: hwy.W4}
	F64x8  = Type{Name: "f64x8", Bits: 64, Width: hwy.W8}
	F64x16 = Type{Name: "f64x16", Bits: 64, Width: hwy.W16}
)

// AllTypes lists every type in a stable order.
var AllTypes = []Type{F32, F64, F32x2, F32x4, F32x8, F32x16, F64x2, F64x4, F64x8, F64x16}

// ScalarTypes lists the two scalar types.
var ScalarTypes = []Type{F32, F64}

// ParseType returns the type with the given name, ignoring case.
func ParseType(name string) (Type, error) {
	for _, t := range AllTypes {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Type{}, fmt.Errorf("accuracy: unknown type %q", name)
}
