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

// Reverse returns the lanes in reverse order.
func (v Simd[R, A]) Reverse() Simd[R, A] {
	out := v
	n := len(v.lanes)
	for i := range n {
		out.lanes[i] = v.lanes[n-1-i]
	}
	return out
}

// RotateLeft moves each lane k positions towards lane 0, wrapping the first
// lanes around to the end: out[i] = v[(i+k) mod N]. Negative k rotates right.
func (v Simd[R, A]) RotateLeft(k int) Simd[R, A] {
	out := v
	n := len(v.lanes)
	k = ((k % n) + n) % n
	for i := range n {
		out.lanes[i] = v.lanes[(i+k)%n]
	}
	return out
}

// RotateRight moves each lane k positions away from lane 0, wrapping the
// last lanes around to the front: out[i] = v[(i-k) mod N].
func (v Simd[R, A]) RotateRight(k int) Simd[R, A] {
	return v.RotateLeft(-k)
}

// Broadcast returns a vector with every lane set to lane i of v.
func (v Simd[R, A]) Broadcast(i int) Simd[R, A] {
	return Splat[R, A](v.lanes[i])
}

// Interleave merges the lanes of v and o alternately into the sequence
// v0, o0, v1, o1, ... and returns its first N elements as lo and the last N
// as hi.
func (v Simd[R, A]) Interleave(o Simd[R, A]) (lo, hi Simd[R, A]) {
	n := len(v.lanes)
	zip := func(k int) R {
		if k%2 == 0 {
			return v.lanes[k/2]
		}
		return o.lanes[k/2]
	}
	for i := range n {
		lo.lanes[i] = zip(i)
		hi.lanes[i] = zip(i + n)
	}
	return lo, hi
}

// Deinterleave is the inverse of Interleave: it splits the concatenation of
// v and o into its even-indexed and odd-indexed elements. It turns a pair of
// interleaved (array-of-structures) vectors into one vector per field.
func (v Simd[R, A]) Deinterleave(o Simd[R, A]) (even, odd Simd[R, A]) {
	for i := range len(v.lanes) {
		even.lanes[i] = v.concatLane(o, 2*i)
		odd.lanes[i] = v.concatLane(o, 2*i+1)
	}
	return even, odd
}

func (v Simd[R, A]) concatLane(o Simd[R, A], i int) R {
	if n := len(v.lanes); i >= n {
		return o.lanes[i-n]
	}
	return v.lanes[i]
}

// Swizzle returns out[i] = v[idx[i]]. It panics unless len(idx) == N and
// every index is in [0, N).
func (v Simd[R, A]) Swizzle(idx ...int) Simd[R, A] {
	n := len(v.lanes)
	if len(idx) != n {
		panic(fmt.Sprintf("lav: Swizzle needs %d indexes, got %d", n, len(idx)))
	}
	out := v
	for i, j := range idx {
		out.lanes[i] = v.lanes[j]
	}
	return out
}

// Swizzle2 selects lanes from the concatenation of v and o: index j < N
// picks v[j] and index j >= N picks o[j-N]. It panics unless len(idx) == N
// and every index is in [0, 2N).
func (v Simd[R, A]) Swizzle2(o Simd[R, A], idx ...int) Simd[R, A] {
	n := len(v.lanes)
	if len(idx) != n {
		panic(fmt.Sprintf("lav: Swizzle2 needs %d indexes, got %d", n, len(idx)))
	}
	out := v
	for i, j := range idx {
		checkLane(j, 2*n)
		out.lanes[i] = v.concatLane(o, j)
	}
	return out
}
