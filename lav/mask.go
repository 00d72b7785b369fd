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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Mask is the result of a lane-wise comparison of Simd[R, A] values: one
// truth value per lane, lane i stored in bit i.
//
// Masks are only meaningful for the vector shape they were derived from, so
// the mask of an F32x4 comparison cannot be used to select F64x4 lanes.
type Mask[R Real[R], A Lanes[R]] struct {
	bits uint64
}

func lanesOf[R Real[R], A Lanes[R]]() int {
	var a A
	return len(a)
}

func fullBits(n int) uint64 {
	return ^uint64(0) >> (64 - n)
}

func checkLane(lane, n int) {
	if lane < 0 || lane >= n {
		panic(fmt.Sprintf("lav: lane %d out of range [0, %d)", lane, n))
	}
}

// MaskSplat returns a mask with every lane set to value.
func MaskSplat[R Real[R], A Lanes[R]](value bool) Mask[R, A] {
	if !value {
		return Mask[R, A]{}
	}
	return Mask[R, A]{bits: fullBits(lanesOf[R, A]())}
}

// MaskFromBits returns the mask whose lane i is bit i of b. Bits at or above
// the lane count are dropped.
func MaskFromBits[R Real[R], A Lanes[R]](b uint64) Mask[R, A] {
	return Mask[R, A]{bits: b & fullBits(lanesOf[R, A]())}
}

// MaskFromBools returns the mask with lane i set to values[i]. It panics if
// len(values) differs from the lane count.
func MaskFromBools[R Real[R], A Lanes[R]](values ...bool) Mask[R, A] {
	n := lanesOf[R, A]()
	if len(values) != n {
		panic(fmt.Sprintf("lav: MaskFromBools needs %d values, got %d", n, len(values)))
	}
	var m Mask[R, A]
	for i, v := range values {
		if v {
			m.bits |= 1 << i
		}
	}
	return m
}

// MaskFlag returns a mask with lane set to value and every other lane set to
// !value. It is the building block for updating or negating one lane.
func MaskFlag[R Real[R], A Lanes[R]](lane int, value bool) Mask[R, A] {
	m := MaskSplat[R, A](!value)
	m.Set(lane, value)
	return m
}

// Lanes returns the number of lanes in the mask.
func (m Mask[R, A]) Lanes() int {
	return lanesOf[R, A]()
}

// All reports whether every lane is set.
func (m Mask[R, A]) All() bool {
	return m.bits == fullBits(m.Lanes())
}

// Any reports whether at least one lane is set.
func (m Mask[R, A]) Any() bool {
	return m.bits != 0
}

// CountTrue returns the number of set lanes.
func (m Mask[R, A]) CountTrue() int {
	return bits.OnesCount64(m.bits)
}

// FirstTrue returns the index of the lowest set lane, or -1 if none is set.
func (m Mask[R, A]) FirstTrue() int {
	if m.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(m.bits)
}

// Test reports whether lane is set. It panics if lane is out of range.
func (m Mask[R, A]) Test(lane int) bool {
	checkLane(lane, m.Lanes())
	return m.bits>>lane&1 == 1
}

// Set sets lane to value. It panics if lane is out of range.
func (m *Mask[R, A]) Set(lane int, value bool) {
	checkLane(lane, m.Lanes())
	if value {
		m.bits |= 1 << lane
	} else {
		m.bits &^= 1 << lane
	}
}

// Bits returns the mask as a bit set, lane i in bit i.
func (m Mask[R, A]) Bits() uint64 {
	return m.bits
}

// ToBools returns the lanes as a bool slice.
func (m Mask[R, A]) ToBools() []bool {
	out := make([]bool, m.Lanes())
	for i := range out {
		out[i] = m.bits>>i&1 == 1
	}
	return out
}

func (m Mask[R, A]) And(o Mask[R, A]) Mask[R, A]    { return Mask[R, A]{m.bits & o.bits} }
func (m Mask[R, A]) Or(o Mask[R, A]) Mask[R, A]     { return Mask[R, A]{m.bits | o.bits} }
func (m Mask[R, A]) Xor(o Mask[R, A]) Mask[R, A]    { return Mask[R, A]{m.bits ^ o.bits} }
func (m Mask[R, A]) AndNot(o Mask[R, A]) Mask[R, A] { return Mask[R, A]{m.bits &^ o.bits} }
func (m Mask[R, A]) Not() Mask[R, A]                { return Mask[R, A]{^m.bits & fullBits(m.Lanes())} }

// Select returns t's lanes where m is set and f's lanes elsewhere.
func (m Mask[R, A]) Select(t, f Simd[R, A]) Simd[R, A] {
	out := f
	for i := range len(out.lanes) {
		if m.bits>>i&1 == 1 {
			out.lanes[i] = t.lanes[i]
		}
	}
	return out
}

// Negate returns v with the lanes selected by m negated.
func (m Mask[R, A]) Negate(v Simd[R, A]) Simd[R, A] {
	return m.Select(v.Neg(), v)
}

// String formats the mask like a bool slice.
func (m Mask[R, A]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range m.Lanes() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if m.bits>>i&1 == 1 {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
