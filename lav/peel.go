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

// Peel conversions move values between the two lane kinds, F32 to F64 and
// F64 to F32, scalar or lane-wise. They are defined by an explicit table of
// functions, one per ordered pair of distinct kinds and lane count (see
// PeelEdges), so no kind can be peeled into itself: such a call does not
// compile. Widening is exact; narrowing rounds to nearest and overflows to
// infinity.

// Peeler is implemented by a kind that peels into D.
type Peeler[D any] interface {
	Peel() D
}

// PeelFrom peels s into D. Only F32 to F64 and F64 to F32 compile.
func PeelFrom[D any, S Peeler[D]](s S) D {
	return s.Peel()
}

// PeelInto stores the peeled value of s in *d.
func PeelInto[D any, S Peeler[D]](s S, d *D) {
	*d = s.Peel()
}

// PeelEdge is one entry of the peel table.
type PeelEdge struct {
	From, To string
	Func     string // function or method performing the conversion
}

func peel[D Real[D], B Lanes[D], S Real[S], A Lanes[S]](v Simd[S, A]) Simd[D, B] {
	return UncheckedSimd[D, B](v)
}

// Lift returns the one-lane vector holding r.
func Lift[R Real[R]](r R) Simd[R, [1]R] {
	return Simd[R, [1]R]{lanes: [1]R{r}}
}

// Unlift returns the only lane of v.
func Unlift[R Real[R]](v Simd[R, [1]R]) R {
	return v.lanes[0]
}
