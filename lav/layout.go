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

import "unsafe"

// AsSimd views s as a run of full vectors followed by the scalar remainder
// that does not fill a vector:
//
//	chunks, rest := lav.AsSimd[lav.F32, [4]lav.F32](data) // len(data) == 10
//	// len(chunks) == 2, len(rest) == 2
//
// Both results alias s: writes through chunks or rest modify s. The chunk
// boundary is len(s) - len(s)%N, so len(rest) < N. This is the bridge
// between flat (structure-of-arrays) data and vectors, and with a struct
// wrapping Simd also between interleaved records and vectors.
func AsSimd[R Real[R], A Lanes[R]](s []R) (chunks []Simd[R, A], rest []R) {
	n := lanesOf[R, A]()
	full := ChunkBoundary(len(s), n)
	if full > 0 {
		chunks = unsafe.Slice((*Simd[R, A])(unsafe.Pointer(unsafe.SliceData(s))), full/n)
	}
	return chunks, s[full:]
}

// FlattenSimd views chunks as the flat slice of their lanes. It is the
// inverse of AsSimd and aliases chunks.
func FlattenSimd[R Real[R], A Lanes[R]](chunks []Simd[R, A]) []R {
	if len(chunks) == 0 {
		return nil
	}
	n := lanesOf[R, A]()
	return unsafe.Slice((*R)(unsafe.Pointer(unsafe.SliceData(chunks))), len(chunks)*n)
}

// AsSimdBits is AsSimd for the bit view.
func AsSimdBits[R Real[R], A Lanes[R]](s []R) (chunks []SimdBits[R, A], rest []R) {
	vs, rest := AsSimd[R, A](s)
	if len(vs) == 0 {
		return nil, rest
	}
	return unsafe.Slice((*SimdBits[R, A])(unsafe.Pointer(unsafe.SliceData(vs))), len(vs)), rest
}
