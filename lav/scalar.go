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
	"unsafe"
)

// Lane-kind independent scalar semantics. F32 and F64 delegate here so both
// kinds agree on NaN, signed zero and edge-case handling; they only differ in
// which math library backs the transcendental functions.

func bitSize[R Real[R]]() int {
	var zero R
	return int(unsafe.Sizeof(zero)) * 8
}

func signBit[R Real[R]](x R) bool {
	return x.RawBits()>>(bitSize[R]()-1)&1 == 1
}

func isNaN[R Real[R]](x R) bool {
	return x != x
}

func isInf[R Real[R]](x R) bool {
	return !isNaN(x) && x-x != 0
}

func isFinite[R Real[R]](x R) bool {
	return x-x == 0
}

// minNum and maxNum follow IEEE 754 minNum/maxNum: a NaN operand yields the
// other operand.
func minNum[R Real[R]](a, b R) R {
	switch {
	case isNaN(a):
		return b
	case isNaN(b):
		return a
	case a < b:
		return a
	default:
		return b
	}
}

func maxNum[R Real[R]](a, b R) R {
	switch {
	case isNaN(a):
		return b
	case isNaN(b):
		return a
	case a > b:
		return a
	default:
		return b
	}
}

func clamp[R Real[R]](x, lo, hi R) R {
	if !(lo <= hi) {
		panic(fmt.Sprintf("lav: Clamp bounds lo=%v hi=%v must satisfy lo <= hi", lo, hi))
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func signum[R Real[R]](x R) R {
	if isNaN(x) {
		return x
	}
	return R(1).Copysign(x)
}

func divEuclid[R Real[R]](a, b R) R {
	q := (a / b).Trunc()
	if a.Rem(b) < 0 {
		if b > 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

func remEuclid[R Real[R]](a, b R) R {
	r := a.Rem(b)
	if r < 0 {
		return r + b.Abs()
	}
	return r
}

func classify[R Real[R]](x, minPositive R) Category {
	switch {
	case isNaN(x):
		return CategoryNaN
	case isInf(x):
		return CategoryInfinite
	case x == 0:
		return CategoryZero
	case x.Abs() < minPositive:
		return CategorySubnormal
	default:
		return CategoryNormal
	}
}

func boolSelect[R any](m bool, a, b R) R {
	if m {
		return a
	}
	return b
}

func approxEqEps[R Real[R]](a, b, epsilon R) bool {
	return a == b || (a-b).Abs() <= epsilon
}

// approxEqUlp compares magnitudes in representable steps. Values of opposite
// sign are never within a step count of each other, except for the two zeros
// which compare equal.
func approxEqUlp[R Real[R]](a, b R, ulp uint64) bool {
	if a == b {
		return true
	}
	if isNaN(a) || isNaN(b) || signBit(a) != signBit(b) {
		return false
	}
	return AbsSub(a.RawBits(), b.RawBits()) <= ulp
}

func approxEq[R Real[R]](a, b, epsilon R, ulp uint64) bool {
	return approxEqEps(a, b, epsilon) || approxEqUlp(a, b, ulp)
}
