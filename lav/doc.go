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

// Package lav provides lane-associated vectors: one set of numeric
// capabilities shared by a floating-point scalar and by fixed-width groups of
// that scalar.
//
// Generic code written against [Numeric] can be instantiated with a scalar
// ([F32], [F64]) or with a vector ([Simd]) and the compiler resolves every
// call statically. The lane count of a vector is part of its type: a
// Simd[F32, [4]F32] always has four lanes and lane counts outside
// {1, 2, 4, 8, 16, 32, 64} fail to compile.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lav/lav"
//
//	a := lav.FromArray[lav.F32]([4]lav.F32{1, 2, 3, 4})
//	b := lav.F32x4{}.Splat(2)
//	sum := a.Mul(b).ReduceSum() // 20
//
//	// Reinterpret a flat slice as vectors plus a scalar remainder.
//	chunks, rest := lav.AsSimd[lav.F32, [4]lav.F32](data)
//
// Aliases such as [F32x4] and [F64x8] name the common instantiations and
// [F32xNative] picks the widest vector the build target handles natively.
package lav
