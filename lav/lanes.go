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

// MaxLanes is the largest supported lane count.
const MaxLanes = 64

// SupportedLanes lists the lane counts accepted by the Lanes constraint.
var SupportedLanes = [...]int{1, 2, 4, 8, 16, 32, 64}

// IsSupportedLanes reports whether n is a supported lane count.
func IsSupportedLanes(n int) bool {
	return n >= 1 && n <= MaxLanes && n&(n-1) == 0
}

// LaneCount is a zero-size witness that A is a supported shape of R lanes.
// Naming LaneCount[R, A] in a declaration only compiles for supported lane
// counts, which makes it a static assertion:
//
//	var _ lav.LaneCount[lav.F32, [8]lav.F32] // ok
//	var _ lav.LaneCount[lav.F32, [3]lav.F32] // does not compile
//
// Simd, Mask and SimdBits carry the same constraint, so unsupported counts
// never reach generated code.
type LaneCount[R Real[R], A Lanes[R]] struct{}

// N returns the lane count.
func (LaneCount[R, A]) N() int {
	return lanesOf[R, A]()
}

// Build-time checks. Each array length is negative, and the build fails, if
// the invariant does not hold.
var (
	// A mask stores one bit per lane in a uint64.
	_ [64 - MaxLanes]struct{}

	// The native lane counts are supported shapes.
	_ LaneCount[F32, [NativeLanesF32]F32]
	_ LaneCount[F64, [NativeLanesF64]F64]
	_ [MaxLanes - NativeLanesF32]struct{}
	_ [MaxLanes - NativeLanesF64]struct{}
)
