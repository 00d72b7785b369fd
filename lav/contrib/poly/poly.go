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

// Package poly evaluates polynomials and interpolations once for every lav
// lane kind: each function is constrained by [lav.Numeric] and instantiates
// with a scalar such as lav.F32 or a vector such as lav.F32x8.
package poly

import "github.com/ajroetker/go-lav/lav"

// Horner evaluates c[0] + c[1]*x + ... + c[n-1]*x^(n-1) with one fused
// multiply-add per coefficient. It returns zero for no coefficients.
func Horner[T lav.Numeric[T, R, M], R lav.Real[R], M any](x T, c ...R) T {
	var zero T
	if len(c) == 0 {
		return zero.Splat(0)
	}
	acc := zero.Splat(c[len(c)-1])
	for i := len(c) - 2; i >= 0; i-- {
		acc = acc.MulAdd(x, zero.Splat(c[i]))
	}
	return acc
}

// Lerp interpolates linearly from a (t = 0) to b (t = 1).
func Lerp[T lav.Numeric[T, R, M], R lav.Real[R], M any](a, b, t T) T {
	return b.Sub(a).MulAdd(t, a)
}

// SmoothStep is 0 below edge0, 1 above edge1 and a cubic Hermite curve in
// between. edge0 must be less than edge1.
func SmoothStep[T lav.Numeric[T, R, M], R lav.Real[R], M any](edge0, edge1, x T) T {
	var zero T
	t := x.Sub(edge0).Div(edge1.Sub(edge0)).Clamp(zero.Splat(0), zero.Splat(1))
	// t*t*(3 - 2t)
	return t.Mul(t).Mul(t.MulAdd(zero.Splat(-2), zero.Splat(3)))
}

// HornerSlice replaces every element of xs by Horner(xs[i], c...), using
// vectors of shape A for the bulk of the slice and scalars for the rest.
func HornerSlice[R lav.Real[R], A lav.Lanes[R]](xs []R, c ...R) {
	lav.ProcessWithTail(xs,
		func(v *lav.Simd[R, A]) {
			*v = Horner[lav.Simd[R, A], R, lav.Mask[R, A]](*v, c...)
		},
		func(rest []R) {
			for i := range rest {
				rest[i] = Horner[R, R, bool](rest[i], c...)
			}
		},
	)
}
