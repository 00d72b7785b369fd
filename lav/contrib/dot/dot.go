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

// Package dot computes dot products and norms over lav lane kinds.
//
// Dot and Norm are generic over the vector shape and run entirely on
// [lav.Simd]: a flat slice is viewed as full vectors plus a scalar
// remainder, the vectors are accumulated lane-wise with fused multiply-add
// and the accumulator is reduced once at the end.
//
// DotF32 and DotF64 pick the shape from [lav.PreferredLanes] at run time and
// hand long inputs to the assembly kernels of github.com/viterin/vek.
package dot

import (
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-lav/lav"
)

// vekThreshold is the input length from which DotF32 and DotF64 call into
// vek instead of the generic kernel.
const vekThreshold = 256

// Dot returns the dot product of a and b over their first min(len(a), len(b))
// elements, accumulating vectors of shape A.
func Dot[R lav.Real[R], A lav.Lanes[R]](a, b []R) R {
	n := min(len(a), len(b))
	va, ra := lav.AsSimd[R, A](a[:n])
	vb, rb := lav.AsSimd[R, A](b[:n])

	var acc lav.Simd[R, A]
	for i := range va {
		acc = va[i].MulAdd(vb[i], acc)
	}
	sum := acc.ReduceSum()
	for i := range ra {
		sum = ra[i].MulAdd(rb[i], sum)
	}
	return sum
}

// Norm returns the Euclidean norm of a.
func Norm[R lav.Real[R], A lav.Lanes[R]](a []R) R {
	return Dot[R, A](a, a).Sqrt()
}

// DotF32 computes the dot product of two F32 slices with the vector shape
// preferred by the running CPU. Returns 0 for empty input; extra elements of
// the longer slice are ignored.
func DotF32(a, b []lav.F32) lav.F32 {
	n := min(len(a), len(b))
	if n >= vekThreshold {
		return lav.F32(vek32.Dot(lav.Float32s(a[:n]), lav.Float32s(b[:n])))
	}
	switch lav.PreferredLanes[lav.F32]() {
	case 16:
		return Dot[lav.F32, [16]lav.F32](a, b)
	case 8:
		return Dot[lav.F32, [8]lav.F32](a, b)
	default:
		return Dot[lav.F32, [4]lav.F32](a, b)
	}
}

// DotF64 is DotF32 for F64 slices.
func DotF64(a, b []lav.F64) lav.F64 {
	n := min(len(a), len(b))
	if n >= vekThreshold {
		return lav.F64(vek.Dot(lav.Float64s(a[:n]), lav.Float64s(b[:n])))
	}
	switch lav.PreferredLanes[lav.F64]() {
	case 8:
		return Dot[lav.F64, [8]lav.F64](a, b)
	case 4:
		return Dot[lav.F64, [4]lav.F64](a, b)
	default:
		return Dot[lav.F64, [2]lav.F64](a, b)
	}
}

// NormF32 returns the Euclidean norm of a.
func NormF32(a []lav.F32) lav.F32 {
	if len(a) >= vekThreshold {
		return lav.F32(vek32.Norm(lav.Float32s(a)))
	}
	return DotF32(a, a).Sqrt()
}

// NormF64 returns the Euclidean norm of a.
func NormF64(a []lav.F64) lav.F64 {
	if len(a) >= vekThreshold {
		return lav.F64(vek.Norm(lav.Float64s(a)))
	}
	return DotF64(a, a).Sqrt()
}
