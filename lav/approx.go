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

// Approximate equality of vectors, lane by lane. A lane compares equal when
//
//   - it is exactly equal (so +0 matches -0 and infinities match themselves),
//   - or |v - o| <= epsilon,
//   - or neither lane is NaN, both have the same sign and their bit patterns
//     are at most ulp representable steps apart.
//
// NaN is never approximately equal to anything, NaN included.

// ApproxEqEps compares lanes by absolute difference.
func (v Simd[R, A]) ApproxEqEps(o Simd[R, A], epsilon R) Mask[R, A] {
	return v.test2(o, func(a, b R) bool { return approxEqEps(a, b, epsilon) })
}

func (v Simd[R, A]) ApproxNeEps(o Simd[R, A], epsilon R) Mask[R, A] {
	return v.ApproxEqEps(o, epsilon).Not()
}

// ApproxEqUlp compares lanes by distance in representable steps.
func (v Simd[R, A]) ApproxEqUlp(o Simd[R, A], ulp uint64) Mask[R, A] {
	return v.test2(o, func(a, b R) bool { return approxEqUlp(a, b, ulp) })
}

func (v Simd[R, A]) ApproxNeUlp(o Simd[R, A], ulp uint64) Mask[R, A] {
	return v.ApproxEqUlp(o, ulp).Not()
}

// LanesApproxEq reports per lane whether either the epsilon or the ulp
// tolerance holds.
func (v Simd[R, A]) LanesApproxEq(o Simd[R, A], epsilon R, ulp uint64) Mask[R, A] {
	return v.test2(o, func(a, b R) bool { return approxEq(a, b, epsilon, ulp) })
}

func (v Simd[R, A]) LanesApproxNe(o Simd[R, A], epsilon R, ulp uint64) Mask[R, A] {
	return v.LanesApproxEq(o, epsilon, ulp).Not()
}

// ApproxEq reports whether every lane is approximately equal.
func (v Simd[R, A]) ApproxEq(o Simd[R, A], epsilon R, ulp uint64) bool {
	return v.LanesApproxEq(o, epsilon, ulp).All()
}

// ApproxNe reports whether at least one lane differs beyond both tolerances.
func (v Simd[R, A]) ApproxNe(o Simd[R, A], epsilon R, ulp uint64) bool {
	return !v.ApproxEq(o, epsilon, ulp)
}

// SimdApproxEq is LanesApproxEq with a separate tolerance per lane.
func (v Simd[R, A]) SimdApproxEq(o, epsilon Simd[R, A], ulp SimdBits[R, A]) Mask[R, A] {
	var m Mask[R, A]
	for i := range len(v.lanes) {
		if approxEq(v.lanes[i], o.lanes[i], epsilon.lanes[i], ulp.Lane(i)) {
			m.bits |= 1 << i
		}
	}
	return m
}

func (v Simd[R, A]) SimdApproxNe(o, epsilon Simd[R, A], ulp SimdBits[R, A]) Mask[R, A] {
	return v.SimdApproxEq(o, epsilon, ulp).Not()
}
