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

// Lane-wise math. Each lane follows the scalar method of R of the same name.

func (v Simd[R, A]) Abs() Simd[R, A] {
	return v.map1(func(a R) R { return a.Abs() })
}

// Signum returns ±1 with the sign of each lane, or NaN for NaN lanes.
func (v Simd[R, A]) Signum() Simd[R, A] {
	return v.map1(func(a R) R { return a.Signum() })
}

func (v Simd[R, A]) ToDegrees() Simd[R, A] {
	return v.map1(func(a R) R { return a.ToDegrees() })
}

func (v Simd[R, A]) ToRadians() Simd[R, A] {
	return v.map1(func(a R) R { return a.ToRadians() })
}

func (v Simd[R, A]) Floor() Simd[R, A] {
	return v.map1(func(a R) R { return a.Floor() })
}

func (v Simd[R, A]) Ceil() Simd[R, A] {
	return v.map1(func(a R) R { return a.Ceil() })
}

// Round rounds each lane half away from zero.
func (v Simd[R, A]) Round() Simd[R, A] {
	return v.map1(func(a R) R { return a.Round() })
}

func (v Simd[R, A]) Trunc() Simd[R, A] {
	return v.map1(func(a R) R { return a.Trunc() })
}

// Fract returns the fractional part v - v.Trunc() of each lane.
func (v Simd[R, A]) Fract() Simd[R, A] {
	return v.map1(func(a R) R { return a.Fract() })
}

func (v Simd[R, A]) Sqrt() Simd[R, A] {
	return v.map1(func(a R) R { return a.Sqrt() })
}

func (v Simd[R, A]) Cbrt() Simd[R, A] {
	return v.map1(func(a R) R { return a.Cbrt() })
}

func (v Simd[R, A]) Exp() Simd[R, A] {
	return v.map1(func(a R) R { return a.Exp() })
}

func (v Simd[R, A]) ExpM1() Simd[R, A] {
	return v.map1(func(a R) R { return a.ExpM1() })
}

func (v Simd[R, A]) Exp2() Simd[R, A] {
	return v.map1(func(a R) R { return a.Exp2() })
}

func (v Simd[R, A]) Ln() Simd[R, A] {
	return v.map1(func(a R) R { return a.Ln() })
}

func (v Simd[R, A]) Ln1p() Simd[R, A] {
	return v.map1(func(a R) R { return a.Ln1p() })
}

func (v Simd[R, A]) Log2() Simd[R, A] {
	return v.map1(func(a R) R { return a.Log2() })
}

func (v Simd[R, A]) Log10() Simd[R, A] {
	return v.map1(func(a R) R { return a.Log10() })
}

func (v Simd[R, A]) Sin() Simd[R, A] {
	return v.map1(func(a R) R { return a.Sin() })
}

func (v Simd[R, A]) Cos() Simd[R, A] {
	return v.map1(func(a R) R { return a.Cos() })
}

func (v Simd[R, A]) Tan() Simd[R, A] {
	return v.map1(func(a R) R { return a.Tan() })
}

func (v Simd[R, A]) Asin() Simd[R, A] {
	return v.map1(func(a R) R { return a.Asin() })
}

func (v Simd[R, A]) Acos() Simd[R, A] {
	return v.map1(func(a R) R { return a.Acos() })
}

func (v Simd[R, A]) Atan() Simd[R, A] {
	return v.map1(func(a R) R { return a.Atan() })
}

func (v Simd[R, A]) Sinh() Simd[R, A] {
	return v.map1(func(a R) R { return a.Sinh() })
}

func (v Simd[R, A]) Cosh() Simd[R, A] {
	return v.map1(func(a R) R { return a.Cosh() })
}

func (v Simd[R, A]) Tanh() Simd[R, A] {
	return v.map1(func(a R) R { return a.Tanh() })
}

func (v Simd[R, A]) Asinh() Simd[R, A] {
	return v.map1(func(a R) R { return a.Asinh() })
}

func (v Simd[R, A]) Acosh() Simd[R, A] {
	return v.map1(func(a R) R { return a.Acosh() })
}

func (v Simd[R, A]) Atanh() Simd[R, A] {
	return v.map1(func(a R) R { return a.Atanh() })
}

func (v Simd[R, A]) Copysign(sign Simd[R, A]) Simd[R, A] {
	return v.map2(sign, func(a, b R) R { return a.Copysign(b) })
}

// Min returns the lane-wise minimum. A NaN lane yields the other operand.
func (v Simd[R, A]) Min(o Simd[R, A]) Simd[R, A] {
	return v.map2(o, func(a, b R) R { return a.Min(b) })
}

// Max returns the lane-wise maximum. A NaN lane yields the other operand.
func (v Simd[R, A]) Max(o Simd[R, A]) Simd[R, A] {
	return v.map2(o, func(a, b R) R { return a.Max(b) })
}

func (v Simd[R, A]) Hypot(o Simd[R, A]) Simd[R, A] {
	return v.map2(o, func(a, b R) R { return a.Hypot(b) })
}

func (v Simd[R, A]) Powf(n Simd[R, A]) Simd[R, A] {
	return v.map2(n, func(a, b R) R { return a.Powf(b) })
}

// Log returns the logarithm of each lane in the matching lane of base.
func (v Simd[R, A]) Log(base Simd[R, A]) Simd[R, A] {
	return v.map2(base, func(a, b R) R { return a.Log(b) })
}

// Atan2 returns the lane-wise arc tangent of v/o using the signs of both to
// pick the quadrant.
func (v Simd[R, A]) Atan2(o Simd[R, A]) Simd[R, A] {
	return v.map2(o, func(a, b R) R { return a.Atan2(b) })
}

// Clamp restricts each lane to [lo, hi] of the matching lanes. It panics if a
// lane of lo exceeds the lane of hi or either bound is NaN.
func (v Simd[R, A]) Clamp(lo, hi Simd[R, A]) Simd[R, A] {
	return v.map3(lo, hi, func(x, l, h R) R { return x.Clamp(l, h) })
}

// SinCos returns the lane-wise sine and cosine.
func (v Simd[R, A]) SinCos() (Simd[R, A], Simd[R, A]) {
	s, c := v, v
	for i := range len(v.lanes) {
		s.lanes[i], c.lanes[i] = v.lanes[i].SinCos()
	}
	return s, c
}
