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

import "fmt"

// SimdBits is the raw bit view of Simd[R, A]. It shares the lane memory of
// the vector it was taken from, so Bits and Simd convert in both directions
// without touching the bit patterns, NaN payloads included.
//
// Lane values are exposed as uint64 holding the 32 or 64 bits of R. All
// arithmetic is unsigned at the width of R: SaturatingAdd of two F32 lanes
// saturates at 1<<32 - 1.
type SimdBits[R Real[R], A Lanes[R]] struct {
	lanes A
}

// Bits returns the bit view of v.
func (v Simd[R, A]) Bits() SimdBits[R, A] {
	return SimdBits[R, A]{lanes: v.lanes}
}

// Simd returns the vector whose lanes have the bit patterns of b.
func (b SimdBits[R, A]) Simd() Simd[R, A] {
	return Simd[R, A]{lanes: b.lanes}
}

// SplatBits returns a bit view with every lane set to the low bits of u.
func SplatBits[R Real[R], A Lanes[R]](u uint64) SimdBits[R, A] {
	var zero R
	return Splat[R, A](zero.FromRawBits(u)).Bits()
}

// BitsFromSlice builds a bit view from the low bits of the first N elements
// of u. It panics if len(u) < N.
func BitsFromSlice[R Real[R], A Lanes[R]](u []uint64) SimdBits[R, A] {
	var b SimdBits[R, A]
	if len(u) < len(b.lanes) {
		panic(fmt.Sprintf("lav: BitsFromSlice needs %d elements, got %d", len(b.lanes), len(u)))
	}
	for i := range len(b.lanes) {
		b.lanes[i] = b.lanes[i].FromRawBits(u[i])
	}
	return b
}

// Lanes returns the number of lanes N.
func (b SimdBits[R, A]) Lanes() int {
	return len(b.lanes)
}

// Lane returns the bit pattern of lane i, zero extended.
func (b SimdBits[R, A]) Lane(i int) uint64 {
	return b.lanes[i].RawBits()
}

// WithLane returns b with lane i set to the low bits of u.
func (b SimdBits[R, A]) WithLane(i int, u uint64) SimdBits[R, A] {
	b.lanes[i] = b.lanes[i].FromRawBits(u)
	return b
}

// ToSlice returns the bit patterns of all lanes.
func (b SimdBits[R, A]) ToSlice() []uint64 {
	out := make([]uint64, len(b.lanes))
	for i := range out {
		out[i] = b.lanes[i].RawBits()
	}
	return out
}

func (b SimdBits[R, A]) map2(o SimdBits[R, A], f func(x, y uint64) uint64) SimdBits[R, A] {
	for i := range len(b.lanes) {
		b.lanes[i] = b.lanes[i].FromRawBits(f(b.lanes[i].RawBits(), o.lanes[i].RawBits()))
	}
	return b
}

func (b SimdBits[R, A]) test2(o SimdBits[R, A], f func(x, y uint64) bool) Mask[R, A] {
	var m Mask[R, A]
	for i := range len(b.lanes) {
		if f(b.lanes[i].RawBits(), o.lanes[i].RawBits()) {
			m.bits |= 1 << i
		}
	}
	return m
}

func (b SimdBits[R, A]) Eq(o SimdBits[R, A]) Mask[R, A] {
	return b.test2(o, func(x, y uint64) bool { return x == y })
}

func (b SimdBits[R, A]) Ne(o SimdBits[R, A]) Mask[R, A] {
	return b.test2(o, func(x, y uint64) bool { return x != y })
}

func (b SimdBits[R, A]) Lt(o SimdBits[R, A]) Mask[R, A] {
	return b.test2(o, func(x, y uint64) bool { return x < y })
}

func (b SimdBits[R, A]) Le(o SimdBits[R, A]) Mask[R, A] {
	return b.test2(o, func(x, y uint64) bool { return x <= y })
}

func (b SimdBits[R, A]) Gt(o SimdBits[R, A]) Mask[R, A] {
	return b.test2(o, func(x, y uint64) bool { return x > y })
}

func (b SimdBits[R, A]) Ge(o SimdBits[R, A]) Mask[R, A] {
	return b.test2(o, func(x, y uint64) bool { return x >= y })
}

// SaturatingAdd adds lane-wise, clamping at the largest pattern of R.
func (b SimdBits[R, A]) SaturatingAdd(o SimdBits[R, A]) SimdBits[R, A] {
	top := bitsMax[R]()
	return b.map2(o, func(x, y uint64) uint64 {
		if s := SaturatingAdd(x, y); s <= top {
			return s
		}
		return top
	})
}

// SaturatingSub subtracts lane-wise, clamping at zero.
func (b SimdBits[R, A]) SaturatingSub(o SimdBits[R, A]) SimdBits[R, A] {
	return b.map2(o, SaturatingSub[uint64])
}

// AbsSub returns the lane-wise distance |b - o|.
func (b SimdBits[R, A]) AbsSub(o SimdBits[R, A]) SimdBits[R, A] {
	return b.map2(o, AbsSub[uint64])
}

func (b SimdBits[R, A]) And(o SimdBits[R, A]) SimdBits[R, A] {
	return b.map2(o, func(x, y uint64) uint64 { return x & y })
}

func (b SimdBits[R, A]) Or(o SimdBits[R, A]) SimdBits[R, A] {
	return b.map2(o, func(x, y uint64) uint64 { return x | y })
}

func (b SimdBits[R, A]) Xor(o SimdBits[R, A]) SimdBits[R, A] {
	return b.map2(o, func(x, y uint64) uint64 { return x ^ y })
}

func (b SimdBits[R, A]) Not() SimdBits[R, A] {
	return b.map2(b, func(x, _ uint64) uint64 { return ^x })
}

// Shl shifts every lane left by s bits within the width of R.
func (b SimdBits[R, A]) Shl(s uint) SimdBits[R, A] {
	return b.map2(b, func(x, _ uint64) uint64 { return x << s })
}

// Shr shifts every lane right by s bits.
func (b SimdBits[R, A]) Shr(s uint) SimdBits[R, A] {
	return b.map2(b, func(x, _ uint64) uint64 { return x >> s })
}
