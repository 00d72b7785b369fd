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
)

// F64 is the double-precision lane kind backed by the standard math package.
type F64 float64

// ToBits returns the IEEE 754 bit pattern of x.
func (x F64) ToBits() uint64 { return math.Float64bits(float64(x)) }

// F64FromBits returns the F64 with bit pattern b.
func F64FromBits(b uint64) F64 { return F64(math.Float64frombits(b)) }

func (x F64) RawBits() uint64              { return x.ToBits() }
func (F64) FromRawBits(b uint64) F64       { return F64FromBits(b) }
func (x F64) Lanes() int                   { return 1 }
func (F64) Splat(r F64) F64                { return r }
func (x F64) Select(m bool, other F64) F64 { return boolSelect(m, x, other) }

// Peel narrows x to single precision, rounding to nearest. Values beyond the
// float32 range become infinities.
func (x F64) Peel() F32 { return F32(x) }

func (x F64) Add(y F64) F64 { return x + y }
func (x F64) Sub(y F64) F64 { return x - y }
func (x F64) Mul(y F64) F64 { return x * y }
func (x F64) Div(y F64) F64 { return x / y }
func (x F64) Rem(y F64) F64 { return F64(math.Mod(float64(x), float64(y))) }
func (x F64) Neg() F64      { return -x }
func (x F64) Recip() F64    { return 1 / x }

// MulAdd computes x*a + b with a single rounding.
func (x F64) MulAdd(a, b F64) F64 { return F64(math.FMA(float64(x), float64(a), float64(b))) }

func (x F64) DivEuclid(y F64) F64 { return divEuclid(x, y) }
func (x F64) RemEuclid(y F64) F64 { return remEuclid(x, y) }

func (x F64) Abs() F64              { return F64(math.Abs(float64(x))) }
func (x F64) Signum() F64           { return signum(x) }
func (x F64) Copysign(sign F64) F64 { return F64(math.Copysign(float64(x), float64(sign))) }
func (x F64) Min(y F64) F64         { return minNum(x, y) }
func (x F64) Max(y F64) F64         { return maxNum(x, y) }
func (x F64) Clamp(lo, hi F64) F64  { return clamp(x, lo, hi) }
func (x F64) ToDegrees() F64        { return x * (180 / math.Pi) }
func (x F64) ToRadians() F64        { return x * (math.Pi / 180) }
func (x F64) Floor() F64            { return F64(math.Floor(float64(x))) }
func (x F64) Ceil() F64             { return F64(math.Ceil(float64(x))) }
func (x F64) Trunc() F64            { return F64(math.Trunc(float64(x))) }
func (x F64) Fract() F64            { return x - x.Trunc() }

// Round rounds half away from zero.
func (x F64) Round() F64 { return F64(math.Round(float64(x))) }

func (x F64) Sqrt() F64        { return F64(math.Sqrt(float64(x))) }
func (x F64) Cbrt() F64        { return F64(math.Cbrt(float64(x))) }
func (x F64) Hypot(y F64) F64  { return F64(math.Hypot(float64(x), float64(y))) }
func (x F64) Powf(n F64) F64   { return F64(math.Pow(float64(x), float64(n))) }
func (x F64) Exp() F64         { return F64(math.Exp(float64(x))) }
func (x F64) ExpM1() F64       { return F64(math.Expm1(float64(x))) }
func (x F64) Exp2() F64        { return F64(math.Exp2(float64(x))) }
func (x F64) Ln() F64          { return F64(math.Log(float64(x))) }
func (x F64) Ln1p() F64        { return F64(math.Log1p(float64(x))) }
func (x F64) Log(base F64) F64 { return x.Ln() / base.Ln() }
func (x F64) Log2() F64        { return F64(math.Log2(float64(x))) }
func (x F64) Log10() F64       { return F64(math.Log10(float64(x))) }
func (x F64) Sin() F64         { return F64(math.Sin(float64(x))) }
func (x F64) Cos() F64         { return F64(math.Cos(float64(x))) }
func (x F64) Tan() F64         { return F64(math.Tan(float64(x))) }
func (x F64) Asin() F64        { return F64(math.Asin(float64(x))) }
func (x F64) Acos() F64        { return F64(math.Acos(float64(x))) }
func (x F64) Atan() F64        { return F64(math.Atan(float64(x))) }
func (x F64) Atan2(y F64) F64  { return F64(math.Atan2(float64(x), float64(y))) }
func (x F64) Sinh() F64        { return F64(math.Sinh(float64(x))) }
func (x F64) Cosh() F64        { return F64(math.Cosh(float64(x))) }
func (x F64) Tanh() F64        { return F64(math.Tanh(float64(x))) }
func (x F64) Asinh() F64       { return F64(math.Asinh(float64(x))) }
func (x F64) Acosh() F64       { return F64(math.Acosh(float64(x))) }
func (x F64) Atanh() F64       { return F64(math.Atanh(float64(x))) }

func (x F64) SinCos() (F64, F64) {
	s, c := math.Sincos(float64(x))
	return F64(s), F64(c)
}

func (x F64) Eq(y F64) bool { return x == y }
func (x F64) Ne(y F64) bool { return x != y }
func (x F64) Lt(y F64) bool { return x < y }
func (x F64) Le(y F64) bool { return x <= y }
func (x F64) Gt(y F64) bool { return x > y }
func (x F64) Ge(y F64) bool { return x >= y }

func (x F64) IsNaN() bool          { return isNaN(x) }
func (x F64) IsInf() bool          { return isInf(x) }
func (x F64) IsFinite() bool       { return isFinite(x) }
func (x F64) IsNormal() bool       { return x.Classify() == CategoryNormal }
func (x F64) IsSubnormal() bool    { return x.Classify() == CategorySubnormal }
func (x F64) IsSignPositive() bool { return !signBit(x) }
func (x F64) IsSignNegative() bool { return signBit(x) }
func (x F64) Classify() Category   { return classify(x, minPositiveF64) }

// TotalCmp returns -1, 0 or +1 ordering x and y by IEEE 754 totalOrder:
// negative NaNs sort first, then -Inf, negative numbers, -0, +0, positive
// numbers, +Inf and positive NaNs.
func (x F64) TotalCmp(y F64) int {
	a := int64(x.ToBits())
	b := int64(y.ToBits())
	a ^= int64(uint64(a>>63) >> 1)
	b ^= int64(uint64(b>>63) >> 1)
	return cmp.Compare(a, b)
}

func (x F64) ReduceSum() F64     { return x }
func (x F64) ReduceProduct() F64 { return x }
func (x F64) ReduceMin() F64     { return x }
func (x F64) ReduceMax() F64     { return x }

func (x F64) ApproxEqEps(y, epsilon F64) bool           { return approxEqEps(x, y, epsilon) }
func (x F64) ApproxNeEps(y, epsilon F64) bool           { return !approxEqEps(x, y, epsilon) }
func (x F64) ApproxEqUlp(y F64, ulp uint64) bool        { return approxEqUlp(x, y, ulp) }
func (x F64) ApproxNeUlp(y F64, ulp uint64) bool        { return !approxEqUlp(x, y, ulp) }
func (x F64) LanesApproxEq(y, eps F64, ulp uint64) bool { return approxEq(x, y, eps, ulp) }
func (x F64) LanesApproxNe(y, eps F64, ulp uint64) bool { return !approxEq(x, y, eps, ulp) }
func (x F64) ApproxEq(y, eps F64, ulp uint64) bool      { return approxEq(x, y, eps, ulp) }
func (x F64) ApproxNe(y, eps F64, ulp uint64) bool      { return !approxEq(x, y, eps, ulp) }

const minPositiveF64 F64 = 0x1p-1022
