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
	"math"
	"testing"
)

func TestConst(t *testing.T) {
	c32 := Const[F32]()
	if c32.Epsilon != F32(math.Nextafter32(1, 2)-1) {
		t.Errorf("F32 Epsilon = %v", c32.Epsilon)
	}
	if c32.Max != math.MaxFloat32 || c32.Min != -math.MaxFloat32 {
		t.Errorf("F32 Max, Min = %v, %v", c32.Max, c32.Min)
	}
	if c32.MinPositive.Classify() != CategoryNormal || (c32.MinPositive / 2).Classify() != CategorySubnormal {
		t.Errorf("F32 MinPositive = %v is not the smallest normal", c32.MinPositive)
	}
	if c32.MantissaDigits != 24 || c32.Radix != 2 {
		t.Errorf("F32 MantissaDigits, Radix = %d, %d", c32.MantissaDigits, c32.Radix)
	}
	if !c32.NaN.IsNaN() || !c32.Inf.IsInf() || !c32.NegInf.IsSignNegative() {
		t.Error("F32 special values mismatch")
	}

	c64 := Const[F64]()
	if c64.Epsilon != F64(math.Nextafter(1, 2)-1) {
		t.Errorf("F64 Epsilon = %v", c64.Epsilon)
	}
	if c64.Pi != math.Pi || c64.Tau != 2*math.Pi || c64.FracPi2 != math.Pi/2 {
		t.Errorf("F64 Pi, Tau, FracPi2 = %v, %v, %v", c64.Pi, c64.Tau, c64.FracPi2)
	}
	if c64.MaxExp != 1024 || c64.Digits != 15 {
		t.Errorf("F64 MaxExp, Digits = %d, %d", c64.MaxExp, c64.Digits)
	}
	if got := c64.SqrtEpsilon * c64.SqrtEpsilon; !got.ApproxEqUlp(c64.Epsilon, 4) {
		t.Errorf("F64 SqrtEpsilon^2 = %v, want %v", got, c64.Epsilon)
	}
	if got := c32.CbrtEpsilon * c32.CbrtEpsilon * c32.CbrtEpsilon; !got.ApproxEqUlp(c32.Epsilon, 8) {
		t.Errorf("F32 CbrtEpsilon^3 = %v, want %v", got, c32.Epsilon)
	}
	if c32.Third != F32(1.0/3) || c64.Frac1Sqrt2 != 1/math.Sqrt2 {
		t.Error("fraction constants mismatch")
	}
}
