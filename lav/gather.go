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

import "fmt"

func checkIndexes(op string, idx []int, n int) {
	if len(idx) < n {
		panic(fmt.Sprintf("lav: %s needs %d indexes, got %d", op, n, len(idx)))
	}
}

// GatherOr loads s[idx[i]] into lane i. Lanes whose index is out of bounds
// take the lane of or instead. It panics if len(idx) < N.
func GatherOr[R Real[R], A Lanes[R]](s []R, idx []int, or Simd[R, A]) Simd[R, A] {
	return GatherSelect(s, MaskSplat[R, A](true), idx, or)
}

// GatherOrDefault is GatherOr with zero fallback lanes.
func GatherOrDefault[R Real[R], A Lanes[R]](s []R, idx []int) Simd[R, A] {
	return GatherOr(s, idx, Simd[R, A]{})
}

// GatherSelect is GatherOr restricted to the lanes enabled by m. Disabled
// lanes take the lane of or without reading s.
func GatherSelect[R Real[R], A Lanes[R]](s []R, m Mask[R, A], idx []int, or Simd[R, A]) Simd[R, A] {
	out := or
	n := len(out.lanes)
	checkIndexes("GatherSelect", idx, n)
	for i := range n {
		if j := idx[i]; m.bits>>i&1 == 1 && j >= 0 && j < len(s) {
			out.lanes[i] = s[j]
		}
	}
	return out
}

// Scatter stores lane i of v into s[idx[i]], skipping out-of-bounds indexes.
// When several lanes share an index the highest lane wins. It panics if
// len(idx) < N.
func (v Simd[R, A]) Scatter(s []R, idx []int) {
	v.ScatterSelect(s, MaskSplat[R, A](true), idx)
}

// ScatterSelect is Scatter restricted to the lanes enabled by m.
func (v Simd[R, A]) ScatterSelect(s []R, m Mask[R, A], idx []int) {
	n := len(v.lanes)
	checkIndexes("ScatterSelect", idx, n)
	for i := range n {
		if j := idx[i]; m.bits>>i&1 == 1 && j >= 0 && j < len(s) {
			s[j] = v.lanes[i]
		}
	}
}
