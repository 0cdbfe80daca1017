// Package hwy provides portable fixed-width lanes for element-wise math.
//
// It follows the Highway C++ library's design philosophy: write an
// algorithm once over a lane type and a lane count, and run it at every
// supported width. A Vec holds 1, 2, 4, 8 or 16 lanes of float32 or
// float64; every operation in this package treats lanes independently.
//
// Basic usage:
//
//	import "github.com/go-highway/hwymath/hwy"
//
//	// Load four lanes
//	v := hwy.LoadN(data, 4)
//
//	// Apply a scalar kernel lane by lane
//	r := hwy.Map(v, kernel)
//
//	// Store results
//	hwy.Store(r, output)
//
// The package is also the single place where floating-point values are
// reinterpreted as bit fields (see Decompose and Compose).
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a fixed-length, ordered set of lanes of one element type.
//
// Vec instances should not be created directly; use Load, LoadN, Set, SetN
// or Zero instead. A Vec is a value: operations return new vectors and
// never modify their inputs.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Width returns the lane count as a Width.
func (v Vec[T]) Width() Width {
	return Width(len(v.data))
}

// Data returns a copy of the lanes.
func (v Vec[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Lane returns lane i. It panics if i is out of range.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}
