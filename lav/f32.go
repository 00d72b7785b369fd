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
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// F32 is the single-precision lane kind. Its transcendental functions are
// float32-native implementations from math32.
type F32 float32

// ToBits returns the IEEE 754 bit pattern of x.
func (x F32) ToBits() uint32 { return math.Float32bits(float32(x)) }

// F32FromBits returns the F32 with bit pattern b.
func F32FromBits(b uint32) F32 { return F32(math.Float32frombits(b)) }

func (x F32) RawBits() uint64              { return uint64(x.ToBits()) }
func (F32) FromRawBits(b uint64) F32       { return F32FromBits(uint32(b)) }
func (x F32) Lanes() int                   { return 1 }
func (F32) Splat(r F32) F32                { return r }
func (x F32) Select(m bool, other F32) F32 { return boolSelect(m, x, other) }

// Peel widens x to double precision. The conversion is exact.
func (x F32) Peel() F64 { return F64(x) }

func (x F32) Add(y F32) F32 { return x + y }
func (x F32) Sub(y F32) F32 { return x - y }
func (x F32) Mul(y F32) F32 { return x * y }
func (x F32) Div(y F32) F32 { return x / y }
func (x F32) Rem(y F32) F32 { return F32(math32.Mod(float32(x), float32(y))) }
func (x F32) Neg() F32      { return -x }
func (x F32) Recip() F32    { return 1 / x }

// MulAdd computes x*a + b with a single rounding. The product of two
// float32 values is exact in float64. The float64 sum is exact too unless it
// lands on a float32 tie, in which case the sign of its rounding error picks
// the neighbor.
func (x F32) MulAdd(a, b F32) F32 {
	p := float64(x) * float64(a)
	s := p + float64(b)
	f := float32(s)
	if float64(f) == s || math.IsNaN(s) || math.IsInf(float64(f), 0) {
		return F32(f)
	}
	g := math.Nextafter32(f, float32(math.Copysign(math.Inf(1), s-float64(f))))
	if (float64(f)+float64(g))/2 != s {
		return F32(f)
	}
	// s = p + b - e exactly (TwoSum).
	bb := s - p
	e := (p - (s - bb)) + (float64(b) - bb)
	lo, hi := min(f, g), max(f, g)
	switch {
	case e > 0:
		return F32(hi)
	case e < 0:
		return F32(lo)
	}
	return F32(f)
}

func (x F32) DivEuclid(y F32) F32 { return divEuclid(x, y) }
func (x F32) RemEuclid(y F32) F32 { return remEuclid(x, y) }

func (x F32) Abs() F32              { return F32(math32.Abs(float32(x))) }
func (x F32) Signum() F32           { return signum(x) }
func (x F32) Copysign(sign F32) F32 { return F32(math32.Copysign(float32(x), float32(sign))) }
func (x F32) Min(y F32) F32         { return minNum(x, y) }
func (x F32) Max(y F32) F32         { return maxNum(x, y) }
func (x F32) Clamp(lo, hi F32) F32  { return clamp(x, lo, hi) }
func (x F32) ToDegrees() F32        { return x * (180 / math.Pi) }
func (x F32) ToRadians() F32        { return x * (math.Pi / 180) }
func (x F32) Floor() F32            { return F32(math32.Floor(float32(x))) }
func (x F32) Ceil() F32             { return F32(math32.Ceil(float32(x))) }
func (x F32) Trunc() F32            { return F32(math32.Trunc(float32(x))) }
func (x F32) Fract() F32            { return x - x.Trunc() }

// Round rounds half away from zero. Every float32 is exact in float64.
func (x F32) Round() F32 { return F32(math.Round(float64(x))) }

func (x F32) Sqrt() F32        { return F32(math32.Sqrt(float32(x))) }
func (x F32) Cbrt() F32        { return F32(math32.Cbrt(float32(x))) }
func (x F32) Hypot(y F32) F32  { return F32(math32.Hypot(float32(x), float32(y))) }
func (x F32) Powf(n F32) F32   { return F32(math32.Pow(float32(x), float32(n))) }
func (x F32) Exp() F32         { return F32(math32.Exp(float32(x))) }
func (x F32) ExpM1() F32       { return F32(math32.Expm1(float32(x))) }
func (x F32) Exp2() F32        { return F32(math32.Exp2(float32(x))) }
func (x F32) Ln() F32          { return F32(math32.Log(float32(x))) }
func (x F32) Ln1p() F32        { return F32(math32.Log1p(float32(x))) }
func (x F32) Log(base F32) F32 { return x.Ln() / base.Ln() }
func (x F32) Log2() F32        { return F32(math32.Log2(float32(x))) }
func (x F32) Log10() F32       { return F32(math32.Log10(float32(x))) }
func (x F32) Sin() F32         { return F32(math32.Sin(float32(x))) }
func (x F32) Cos() F32         { return F32(math32.Cos(float32(x))) }
func (x F32) Tan() F32         { return F32(math32.Tan(float32(x))) }
func (x F32) Asin() F32        { return F32(math32.Asin(float32(x))) }
func (x F32) Acos() F32        { return F32(math32.Acos(float32(x))) }
func (x F32) Atan() F32        { return F32(math32.Atan(float32(x))) }
func (x F32) Atan2(y F32) F32  { return F32(math32.Atan2(float32(x), float32(y))) }
func (x F32) Sinh() F32        { return F32(math32.Sinh(float32(x))) }
func (x F32) Cosh() F32        { return F32(math32.Cosh(float32(x))) }
func (x F32) Tanh() F32        { return F32(math32.Tanh(float32(x))) }
func (x F32) Asinh() F32       { return F32(math32.Asinh(float32(x))) }
func (x F32) Acosh() F32       { return F32(math32.Acosh(float32(x))) }
func (x F32) Atanh() F32       { return F32(math32.Atanh(float32(x))) }

func (x F32) SinCos() (F32, F32) {
	s, c := math32.Sincos(float32(x))
	return F32(s), F32(c)
}

func (x F32) Eq(y F32) bool { return x == y }
func (x F32) Ne(y F32) bool { return x != y }
func (x F32) Lt(y F32) bool { return x < y }
func (x F32) Le(y F32) bool { return x <= y }
func (x F32) Gt(y F32) bool { return x > y }
func (x F32) Ge(y F32) bool { return x >= y }

func (x F32) IsNaN() bool          { return isNaN(x) }
func (x F32) IsInf() bool          { return isInf(x) }
func (x F32) IsFinite() bool       { return isFinite(x) }
func (x F32) IsNormal() bool       { return x.Classify() == CategoryNormal }
func (x F32) IsSubnormal() bool    { return x.Classify() == CategorySubnormal }
func (x F32) IsSignPositive() bool { return !signBit(x) }
func (x F32) IsSignNegative() bool { return signBit(x) }
func (x F32) Classify() Category   { return classify(x, minPositiveF32) }

// TotalCmp returns -1, 0 or +1 ordering x and y by IEEE 754 totalOrder:
// negative NaNs sort first, then -Inf, negative numbers, -0, +0, positive
// numbers, +Inf and positive NaNs.
func (x F32) TotalCmp(y F32) int {
	a := int32(x.ToBits())
	b := int32(y.ToBits())
	a ^= int32(uint32(a>>31) >> 1)
	b ^= int32(uint32(b>>31) >> 1)
	return cmp.Compare(a, b)
}

func (x F32) ReduceSum() F32     { return x }
func (x F32) ReduceProduct() F32 { return x }
func (x F32) ReduceMin() F32     { return x }
func (x F32) ReduceMax() F32     { return x }

func (x F32) ApproxEqEps(y, epsilon F32) bool           { return approxEqEps(x, y, epsilon) }
func (x F32) ApproxNeEps(y, epsilon F32) bool           { return !approxEqEps(x, y, epsilon) }
func (x F32) ApproxEqUlp(y F32, ulp uint64) bool        { return approxEqUlp(x, y, ulp) }
func (x F32) ApproxNeUlp(y F32, ulp uint64) bool        { return !approxEqUlp(x, y, ulp) }
func (x F32) LanesApproxEq(y, eps F32, ulp uint64) bool { return approxEq(x, y, eps, ulp) }
func (x F32) LanesApproxNe(y, eps F32, ulp uint64) bool { return !approxEq(x, y, eps, ulp) }
func (x F32) ApproxEq(y, eps F32, ulp uint64) bool      { return approxEq(x, y, eps, ulp) }
func (x F32) ApproxNe(y, eps F32, ulp uint64) bool      { return !approxEq(x, y, eps, ulp) }

const minPositiveF32 F32 = 0x1p-126
