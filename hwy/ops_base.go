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

package hwy

import (
	"fmt"
	"math"
)

// This file provides the pure Go lane operations. Every operation works
// lane by lane; nothing here reads one lane to compute another.

// Load creates a vector of the natural width by loading data from a slice.
// If src is shorter than the natural width, only len(src) lanes are loaded.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LoadN creates a vector of exactly w lanes from the first w elements of src.
// It panics if w is not a supported width or src is shorter than w.
func LoadN[T Lanes](src []T, w Width) Vec[T] {
	mustValid(w)
	if len(src) < int(w) {
		panic(fmt.Sprintf("hwy: LoadN of %d lanes from slice of length %d", int(w), len(src)))
	}
	data := make([]T, int(w))
	copy(data, src[:w])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector of the natural width with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// SetN creates a vector of w lanes, all set to value.
func SetN[T Lanes](w Width, value T) Vec[T] {
	mustValid(w)
	data := make([]T, int(w))
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector of the natural width with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	return Vec[T]{data: data}
}

// Map applies f to every lane of v.
func Map[T Lanes](v Vec[T], f func(T) T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = f(x)
	}
	return Vec[T]{data: result}
}

// Map2 applies f to corresponding lanes of a and b.
// It panics if a and b have different widths.
func Map2[T Lanes](a, b Vec[T], f func(T, T) T) Vec[T] {
	if len(a.data) != len(b.data) {
		panic(fmt.Sprintf("hwy: Map2 width mismatch: %d vs %d lanes", len(a.data), len(b.data)))
	}
	result := make([]T, len(a.data))
	for i := range a.data {
		result[i] = f(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// MapPair applies f to every lane of v and returns both results as vectors.
func MapPair[T Lanes](v Vec[T], f func(T) (T, T)) (Vec[T], Vec[T]) {
	r0 := make([]T, len(v.data))
	r1 := make([]T, len(v.data))
	for i, x := range v.data {
		r0[i], r1[i] = f(x)
	}
	return Vec[T]{data: r0}, Vec[T]{data: r1}
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, val := range v.data {
		bits[i] = math.IsNaN(float64(val))
	}
	return Mask[T]{bits: bits}
}
