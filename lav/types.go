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

import "golang.org/x/exp/constraints"

// Number is a constraint for every Go integer and floating-point type,
// including the named lane kinds F32 and F64.
type Number interface {
	constraints.Integer | constraints.Float
}

// Word is a constraint for the fixed-width types whose bit patterns can be
// reinterpreted by WrapFrom and WrapUnchecked.
type Word interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Lanes is a constraint for the array shapes a vector of R can take. The
// supported lane counts are the powers of two from 1 to MaxLanes.
type Lanes[R any] interface {
	~[1]R | ~[2]R | ~[4]R | ~[8]R | ~[16]R | ~[32]R | ~[64]R
}

// Arith is the arithmetic part of Numeric.
type Arith[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Rem(T) T
	Neg() T
	// MulAdd returns x*a + b with a single rounding.
	MulAdd(a, b T) T
	DivEuclid(T) T
	RemEuclid(T) T
	Recip() T
}

// Math is the rounding, sign and transcendental part of Numeric.
type Math[T any] interface {
	Abs() T
	Signum() T
	Copysign(sign T) T
	Min(T) T
	Max(T) T
	Clamp(lo, hi T) T
	ToDegrees() T
	ToRadians() T

	Floor() T
	Ceil() T
	Round() T
	Trunc() T
	Fract() T

	Sqrt() T
	Cbrt() T
	Hypot(T) T
	Powf(T) T

	Exp() T
	ExpM1() T
	Exp2() T
	Ln() T
	Ln1p() T
	Log(base T) T
	Log2() T
	Log10() T

	Sin() T
	Cos() T
	Tan() T
	SinCos() (T, T)
	Asin() T
	Acos() T
	Atan() T
	Atan2(T) T
	Sinh() T
	Cosh() T
	Tanh() T
	Asinh() T
	Acosh() T
	Atanh() T
}

// Compare is the part of Numeric producing per-lane truth values of kind M:
// bool for scalars and a Mask for vectors.
type Compare[T, M any] interface {
	Eq(T) M
	Ne(T) M
	Lt(T) M
	Le(T) M
	Gt(T) M
	Ge(T) M

	IsNaN() M
	IsInf() M
	IsFinite() M
	IsNormal() M
	IsSubnormal() M
	IsSignPositive() M
	IsSignNegative() M

	// Select returns the receiver where m holds and other elsewhere.
	Select(m M, other T) T
}

// Reduce folds all lanes into a single lane value.
type Reduce[R any] interface {
	ReduceSum() R
	ReduceProduct() R
	ReduceMin() R
	ReduceMax() R
}

// Approx is approximate equality by absolute tolerance (Eps), by distance in
// representable steps (Ulp) or by either (LanesApproxEq). ApproxEq and
// ApproxNe reduce the lane results to a single bool.
type Approx[T, R, M any] interface {
	ApproxEqEps(other T, epsilon R) M
	ApproxNeEps(other T, epsilon R) M
	ApproxEqUlp(other T, ulp uint64) M
	ApproxNeUlp(other T, ulp uint64) M
	LanesApproxEq(other T, epsilon R, ulp uint64) M
	LanesApproxNe(other T, epsilon R, ulp uint64) M
	ApproxEq(other T, epsilon R, ulp uint64) bool
	ApproxNe(other T, epsilon R, ulp uint64) bool
}

// Numeric is the operation set shared by a lane kind R and every vector of R.
// T is the implementing type and M its per-lane truth value.
//
// A function constrained by Numeric can be instantiated with F32 itself or
// with Simd[F32, [8]F32] without change:
//
//	func Lerp[T lav.Numeric[T, R, M], R lav.Real[R], M any](a, b, t T) T {
//		return b.Sub(a).MulAdd(t, a)
//	}
type Numeric[T, R, M any] interface {
	// Lanes returns the number of lanes of T, 1 for scalars.
	Lanes() int
	// Splat returns a T with every lane set to r.
	Splat(r R) T

	Arith[T]
	Math[T]
	Compare[T, M]
	Reduce[R]
	Approx[T, R, M]
}

// Real is a constraint for the scalar lane kinds F32 and F64.
type Real[R any] interface {
	constraints.Float
	Numeric[R, R, bool]

	// RawBits returns the IEEE 754 bit pattern of the value, zero extended.
	RawBits() uint64
	// FromRawBits returns the value whose bit pattern is the low bits of b.
	// The receiver is ignored.
	FromRawBits(b uint64) R
	// TotalCmp orders values by the IEEE 754 totalOrder predicate.
	TotalCmp(R) int
	Classify() Category
}

// Vector is the vector-only surface of Simd on top of Numeric.
type Vector[V any, R Real[R], A Lanes[R]] interface {
	Numeric[V, R, Mask[R, A]]

	ToArray() A
	Extract(lane int) R
	Insert(lane int, r R) V
	CopyTo(dst []R)

	Reverse() V
	RotateLeft(k int) V
	RotateRight(k int) V
	Interleave(other V) (V, V)
	Deinterleave(other V) (V, V)
	Swizzle(idx ...int) V
	Swizzle2(other V, idx ...int) V

	Bits() SimdBits[R, A]
	SimdApproxEq(other V, epsilon V, ulp SimdBits[R, A]) Mask[R, A]
	SimdApproxNe(other V, epsilon V, ulp SimdBits[R, A]) Mask[R, A]
}

// Category is the IEEE 754 class of a floating-point value.
type Category uint8

const (
	CategoryNaN Category = iota
	CategoryInfinite
	CategoryZero
	CategorySubnormal
	CategoryNormal
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryNaN:
		return "nan"
	case CategoryInfinite:
		return "infinite"
	case CategoryZero:
		return "zero"
	case CategorySubnormal:
		return "subnormal"
	case CategoryNormal:
		return "normal"
	default:
		return "unknown"
	}
}

//go:generate go run ../cmd/lavgen -output aliases_gen.go

// The scalar lane kinds implement the shared capability with bool truth
// values. The vector aliases are checked in aliases_gen.go.
var (
	_ Numeric[F32, F32, bool] = F32(0)
	_ Numeric[F64, F64, bool] = F64(0)
)
