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

// ProcessWithTail is a helper for processing arrays in chunks of w lanes
// that handles both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of w
//
// Example:
//
//	hwy.ProcessWithTail(len(data), hwy.W8,
//	    func(offset int) {
//	        v := hwy.LoadN(data[offset:], hwy.W8)
//	        hwy.Store(kernel(v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := range count {
//	            output[offset+i] = scalarKernel(data[offset+i])
//	        }
//	    },
//	)
func ProcessWithTail(size int, w Width, fullFn func(offset int), tailFn func(offset, count int)) {
	mustValid(w)
	lanes := int(w)

	// Process full vectors
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	// Process tail if any
	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}
