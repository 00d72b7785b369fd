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
	"unsafe"
)

// Constants holds the mathematical constants and format limits of a lane
// kind, rounded to that kind.
type Constants[R Real[R]] struct {
	Zero, One, Two R

	Pi, Tau, Sqrt2 R

	// Half is 1/2, Third 1/3 and so on.
	Half, Third, Quarter, Sixth, Eighth R

	// FracPi2 is π/2, FracPi3 π/3 and so on.
	FracPi2, FracPi3, FracPi4, FracPi6, FracPi8 R

	Frac1Pi, Frac1Tau, Frac1Sqrt2, Frac2Pi, Frac2SqrtPi R

	// Epsilon is the difference between 1 and the next representable value.
	Epsilon, SqrtEpsilon, CbrtEpsilon R

	// Min is the most negative finite value, MinPositive the smallest
	// positive normal value.
	Min, MinPositive, Max R

	NaN, Inf, NegInf R

	Radix, MantissaDigits, Digits      int
	MinExp, MaxExp, Min10Exp, Max10Exp int
}

var (
	f32Consts = newConstants[F32](
		0x1p-23, 3.4526698e-4, 4.9215667e-3,
		math.MaxFloat32, 0x1p-126,
		24, 6, -125, 128, -37, 38,
	)
	f64Consts = newConstants[F64](
		0x1p-52, 1.4901161193847656e-8, 6.055454452393343e-6,
		math.MaxFloat64, 0x1p-1022,
		53, 15, -1021, 1024, -307, 308,
	)
)

func newConstants[R Real[R]](eps, sqrtEps, cbrtEps, maxVal, minPos float64,
	mantissa, digits, minExp, maxExp, min10, max10 int) Constants[R] {
	return Constants[R]{
		Zero:           0,
		One:            1,
		Two:            2,
		Pi:             R(math.Pi),
		Tau:            R(2 * math.Pi),
		Sqrt2:          R(math.Sqrt2),
		Half:           R(1.0 / 2),
		Third:          R(1.0 / 3),
		Quarter:        R(1.0 / 4),
		Sixth:          R(1.0 / 6),
		Eighth:         R(1.0 / 8),
		FracPi2:        R(math.Pi / 2),
		FracPi3:        R(math.Pi / 3),
		FracPi4:        R(math.Pi / 4),
		FracPi6:        R(math.Pi / 6),
		FracPi8:        R(math.Pi / 8),
		Frac1Pi:        R(1 / math.Pi),
		Frac1Tau:       R(1 / (2 * math.Pi)),
		Frac1Sqrt2:     R(1 / math.Sqrt2),
		Frac2Pi:        R(2 / math.Pi),
		Frac2SqrtPi:    R(2 / math.SqrtPi),
		Epsilon:        R(eps),
		SqrtEpsilon:    R(sqrtEps),
		CbrtEpsilon:    R(cbrtEps),
		Min:            R(-maxVal),
		MinPositive:    R(minPos),
		Max:            R(maxVal),
		NaN:            R(math.NaN()),
		Inf:            R(math.Inf(1)),
		NegInf:         R(math.Inf(-1)),
		Radix:          2,
		MantissaDigits: mantissa,
		Digits:         digits,
		MinExp:         minExp,
		MaxExp:         maxExp,
		Min10Exp:       min10,
		Max10Exp:       max10,
	}
}

// Const returns the constants of lane kind R.
func Const[R Real[R]]() Constants[R] {
	var zero R
	if unsafe.Sizeof(zero) == 4 {
		return constantsAs[R](f32Consts)
	}
	return constantsAs[R](f64Consts)
}

// constantsAs reinterprets a constants table between kinds of the same width,
// which share its layout.
func constantsAs[R Real[R], S Real[S]](c Constants[S]) Constants[R] {
	return *(*Constants[R])(unsafe.Pointer(&c))
}
