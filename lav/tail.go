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

package lav

// TailMask creates a mask with the first count lanes active. Counts outside
// [0, N] are clamped.
//
// Example:
//
//	chunks, rest := lav.AsSimd[lav.F32, [8]lav.F32](data)
//	// ... process chunks
//	m := lav.TailMask[lav.F32, [8]lav.F32](len(rest))
//	v := lav.FromSlicePartial[lav.F32, [8]lav.F32](rest, 0)
//	v.Sqrt().StoreMasked(rest, m)
func TailMask[R Real[R], A Lanes[R]](count int) Mask[R, A] {
	n := lanesOf[R, A]()
	count = max(0, min(count, n))
	if count == 0 {
		return Mask[R, A]{}
	}
	return Mask[R, A]{bits: fullBits(count)}
}

// ChunkBoundary returns the length of the longest prefix of size elements
// made of whole groups of lanes: size - size%lanes.
func ChunkBoundary(size, lanes int) int {
	return size - size%lanes
}

// ProcessWithTail walks s in place: fullFn is called for each full vector
// and tailFn once with the remainder if len(s) is not a multiple of N.
//
// Example:
//
//	lav.ProcessWithTail(data,
//	    func(v *lav.F32x8) {
//	        *v = v.Mul(*v)
//	    },
//	    func(rest []lav.F32) {
//	        for i := range rest {
//	            rest[i] *= rest[i]
//	        }
//	    },
//	)
func ProcessWithTail[R Real[R], A Lanes[R]](s []R, fullFn func(v *Simd[R, A]), tailFn func(rest []R)) {
	chunks, rest := AsSimd[R, A](s)
	for i := range chunks {
		fullFn(&chunks[i])
	}
	if len(rest) > 0 && tailFn != nil {
		tailFn(rest)
	}
}
