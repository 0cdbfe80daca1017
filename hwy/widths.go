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
	"unsafe"
)

// Width is the lane count of a vector.
//
// Only the widths in SupportedWidths are valid. W1 is the scalar case
// expressed as a vector, so code written against Vec also covers scalars.
type Width int

const (
	W1  Width = 1
	W2  Width = 2
	W4  Width = 4
	W8  Width = 8
	W16 Width = 16
)

// SupportedWidths lists every valid lane count, narrowest first.
var SupportedWidths = []Width{W1, W2, W4, W8, W16}

// Valid reports whether w is one of SupportedWidths.
func (w Width) Valid() bool {
	switch w {
	case W1, W2, W4, W8, W16:
		return true
	}
	return false
}

// String returns "x<N>", e.g. "x8".
func (w Width) String() string {
	return fmt.Sprintf("x%d", int(w))
}

// Bytes returns the register size in bytes that w lanes of T occupy.
//
// For example, W8 of float32 is 32 bytes (one AVX2 register) and W8 of
// float64 is 64 bytes (one AVX-512 register).
func Bytes[T Lanes](w Width) int {
	var dummy T
	return int(w) * int(unsafe.Sizeof(dummy))
}

// NaturalWidth returns the widest supported width of T that fits in the
// current SIMD register (see CurrentWidth). It never returns less than W1.
func NaturalWidth[T Lanes]() Width {
	n := MaxLanes[T]()
	best := W1
	for _, w := range SupportedWidths {
		if int(w) <= n {
			best = w
		}
	}
	return best
}

// mustValid panics with a descriptive message if w is not supported.
// Passing an unsupported width is a programming error, like an
// out-of-range slice index.
func mustValid(w Width) {
	if !w.Valid() {
		panic(fmt.Sprintf("hwy: unsupported width %d (want one of 1, 2, 4, 8, 16)", int(w)))
	}
}

// ValidWidth reports whether n lanes is a supported width.
func ValidWidth(n int) bool {
	return Width(n).Valid()
}
