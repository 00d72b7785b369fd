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

// Simd is a fixed-width vector of lane kind R shaped like the array A, for
// example Simd[F32, [8]F32]. It has the size and alignment of A, so a slice
// of R can be viewed as a slice of Simd without copying (see AsSimd).
//
// All operations are lane-wise and total over every lane. Simd is a plain
// value: copies are independent and no method retains its arguments.
type Simd[R Real[R], A Lanes[R]] struct {
	lanes A
}

// Splat returns a vector with every lane set to r.
func Splat[R Real[R], A Lanes[R]](r R) Simd[R, A] {
	var v Simd[R, A]
	for i := range len(v.lanes) {
		v.lanes[i] = r
	}
	return v
}

// FromArray returns the vector holding the lanes of a.
func FromArray[R Real[R], A Lanes[R]](a A) Simd[R, A] {
	return Simd[R, A]{lanes: a}
}

// FromSlice loads the first N elements of s. It panics if len(s) < N.
func FromSlice[R Real[R], A Lanes[R]](s []R) Simd[R, A] {
	var v Simd[R, A]
	n := len(v.lanes)
	if len(s) < n {
		panic(fmt.Sprintf("lav: FromSlice needs %d elements, got %d", n, len(s)))
	}
	for i := range n {
		v.lanes[i] = s[i]
	}
	return v
}

// FromSlicePartial loads min(N, len(s)) elements of s and sets the remaining
// lanes to fill.
func FromSlicePartial[R Real[R], A Lanes[R]](s []R, fill R) Simd[R, A] {
	v := Splat[R, A](fill)
	n := min(len(v.lanes), len(s))
	for i := range n {
		v.lanes[i] = s[i]
	}
	return v
}

// Splat returns a vector with every lane set to r. The receiver is ignored,
// which lets generic code build constants from a zero value.
func (Simd[R, A]) Splat(r R) Simd[R, A] {
	return Splat[R, A](r)
}

// Lanes returns the number of lanes N.
func (v Simd[R, A]) Lanes() int {
	return len(v.lanes)
}

// ToArray returns a copy of the lanes.
func (v Simd[R, A]) ToArray() A {
	return v.lanes
}

// AsArray returns the lanes for in-place reads and writes.
func (v *Simd[R, A]) AsArray() *A {
	return &v.lanes
}

// Extract returns lane i. It panics if i is not in [0, N).
func (v Simd[R, A]) Extract(i int) R {
	return v.lanes[i]
}

// Insert returns v with lane i replaced by r. It panics if i is not in [0, N).
func (v Simd[R, A]) Insert(i int, r R) Simd[R, A] {
	v.lanes[i] = r
	return v
}

// CopyTo stores the lanes into dst. It panics if len(dst) < N.
func (v Simd[R, A]) CopyTo(dst []R) {
	n := len(v.lanes)
	if len(dst) < n {
		panic(fmt.Sprintf("lav: CopyTo needs %d elements, got %d", n, len(dst)))
	}
	for i := range n {
		dst[i] = v.lanes[i]
	}
}

// CopyToPartial stores min(N, len(dst)) lanes into dst and returns the count.
func (v Simd[R, A]) CopyToPartial(dst []R) int {
	n := min(len(v.lanes), len(dst))
	for i := range n {
		dst[i] = v.lanes[i]
	}
	return n
}

// StoreMasked stores the lanes selected by m into dst, leaving other elements
// untouched. Lanes beyond len(dst) are skipped.
func (v Simd[R, A]) StoreMasked(dst []R, m Mask[R, A]) {
	n := min(len(v.lanes), len(dst))
	for i := range n {
		if m.bits>>i&1 == 1 {
			dst[i] = v.lanes[i]
		}
	}
}

// String formats the lanes like an array.
func (v Simd[R, A]) String() string {
	return fmt.Sprint(v.lanes)
}

func (v Simd[R, A]) map1(f func(R) R) Simd[R, A] {
	for i := range len(v.lanes) {
		v.lanes[i] = f(v.lanes[i])
	}
	return v
}

func (v Simd[R, A]) map2(o Simd[R, A], f func(R, R) R) Simd[R, A] {
	for i := range len(v.lanes) {
		v.lanes[i] = f(v.lanes[i], o.lanes[i])
	}
	return v
}

func (v Simd[R, A]) map3(a, b Simd[R, A], f func(R, R, R) R) Simd[R, A] {
	for i := range len(v.lanes) {
		v.lanes[i] = f(v.lanes[i], a.lanes[i], b.lanes[i])
	}
	return v
}

func (v Simd[R, A]) test1(f func(R) bool) Mask[R, A] {
	var m Mask[R, A]
	for i := range len(v.lanes) {
		if f(v.lanes[i]) {
			m.bits |= 1 << i
		}
	}
	return m
}

func (v Simd[R, A]) test2(o Simd[R, A], f func(R, R) bool) Mask[R, A] {
	var m Mask[R, A]
	for i := range len(v.lanes) {
		if f(v.lanes[i], o.lanes[i]) {
			m.bits |= 1 << i
		}
	}
	return m
}

func (v Simd[R, A]) Add(o Simd[R, A]) Simd[R, A] {
	return v.map2(o, func(a, b R) R { return a + b })
}

func (v Simd[R, A]) Sub(o Simd[R, A]) Simd[R, A] {
	return v.map2(o, func(a, b R) R { return a - b })
}

func (v Simd[R, A]) Mul(o Simd[R, A]) Simd[R, A] {
	return v.map2(o, func(a, b R) R { return a * b })
}

func (v Simd[R, A]) Div(o Simd[R, A]) Simd[R, A] {
	return v.map2(o, func(a, b R) R { return a / b })
}

// Rem returns the lane-wise remainder of truncated division, with the sign
// of v.
func (v Simd[R, A]) Rem(o Simd[R, A]) Simd[R, A] {
	return v.map2(o, func(a, b R) R { return a.Rem(b) })
}

func (v Simd[R, A]) Neg() Simd[R, A] {
	return v.map1(func(a R) R { return -a })
}

// MulAdd returns v*a + b lane-wise with a single rounding per lane.
func (v Simd[R, A]) MulAdd(a, b Simd[R, A]) Simd[R, A] {
	return v.map3(a, b, func(x, y, z R) R { return x.MulAdd(y, z) })
}

func (v Simd[R, A]) DivEuclid(o Simd[R, A]) Simd[R, A] {
	return v.map2(o, func(a, b R) R { return a.DivEuclid(b) })
}

func (v Simd[R, A]) RemEuclid(o Simd[R, A]) Simd[R, A] {
	return v.map2(o, func(a, b R) R { return a.RemEuclid(b) })
}

func (v Simd[R, A]) Recip() Simd[R, A] {
	return v.map1(func(a R) R { return 1 / a })
}

func (v Simd[R, A]) Eq(o Simd[R, A]) Mask[R, A] {
	return v.test2(o, func(a, b R) bool { return a == b })
}

func (v Simd[R, A]) Ne(o Simd[R, A]) Mask[R, A] {
	return v.test2(o, func(a, b R) bool { return a != b })
}

func (v Simd[R, A]) Lt(o Simd[R, A]) Mask[R, A] {
	return v.test2(o, func(a, b R) bool { return a < b })
}

func (v Simd[R, A]) Le(o Simd[R, A]) Mask[R, A] {
	return v.test2(o, func(a, b R) bool { return a <= b })
}

func (v Simd[R, A]) Gt(o Simd[R, A]) Mask[R, A] {
	return v.test2(o, func(a, b R) bool { return a > b })
}

func (v Simd[R, A]) Ge(o Simd[R, A]) Mask[R, A] {
	return v.test2(o, func(a, b R) bool { return a >= b })
}

func (v Simd[R, A]) IsNaN() Mask[R, A] {
	return v.test1(isNaN[R])
}

func (v Simd[R, A]) IsInf() Mask[R, A] {
	return v.test1(isInf[R])
}

func (v Simd[R, A]) IsFinite() Mask[R, A] {
	return v.test1(isFinite[R])
}

func (v Simd[R, A]) IsNormal() Mask[R, A] {
	return v.test1(func(a R) bool { return a.IsNormal() })
}

func (v Simd[R, A]) IsSubnormal() Mask[R, A] {
	return v.test1(func(a R) bool { return a.IsSubnormal() })
}

func (v Simd[R, A]) IsSignPositive() Mask[R, A] {
	return v.test1(func(a R) bool { return !signBit(a) })
}

func (v Simd[R, A]) IsSignNegative() Mask[R, A] {
	return v.test1(signBit[R])
}

// Select returns v's lanes where m is set and other's lanes elsewhere.
func (v Simd[R, A]) Select(m Mask[R, A], other Simd[R, A]) Simd[R, A] {
	return m.Select(v, other)
}
