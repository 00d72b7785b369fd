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

// Reductions fold lanes pairwise: lane i is combined with lane i+N/2, then
// the halves are folded again until one lane remains. For a vector holding
// the same value in every lane the sum is therefore exact whenever the
// intermediate doublings are representable.

func (v Simd[R, A]) fold(f func(R, R) R) R {
	a := v.lanes
	for w := len(a) / 2; w >= 1; w /= 2 {
		for i := range w {
			a[i] = f(a[i], a[i+w])
		}
	}
	return a[0]
}

// ReduceSum returns the sum of all lanes. A NaN lane makes the sum NaN.
func (v Simd[R, A]) ReduceSum() R {
	return v.fold(func(a, b R) R { return a + b })
}

// ReduceProduct returns the product of all lanes.
func (v Simd[R, A]) ReduceProduct() R {
	return v.fold(func(a, b R) R { return a * b })
}

// ReduceMin returns the smallest lane. Unlike Min it propagates NaN, following
// the builtin min: if any lane is NaN the result is NaN.
func (v Simd[R, A]) ReduceMin() R {
	return v.fold(func(a, b R) R { return min(a, b) })
}

// ReduceMax returns the largest lane, propagating NaN like ReduceMin.
func (v Simd[R, A]) ReduceMax() R {
	return v.fold(func(a, b R) R { return max(a, b) })
}
