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

package lav_test

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-lav/lav"
)

func Example() {
	a := lav.FromArray[lav.F32]([4]lav.F32{1, 2, 3, 4})
	b := lav.F32x4{}.Splat(2)
	fmt.Println(a.Mul(b).ReduceSum())
	// Output: 20
}

func ExampleAsSimd() {
	data := []lav.F32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	chunks, rest := lav.AsSimd[lav.F32, [4]lav.F32](data)

	var acc lav.F32x4
	for _, c := range chunks {
		acc = acc.Add(c)
	}
	total := acc.ReduceSum()
	for _, r := range rest {
		total += r
	}
	fmt.Println(len(chunks), len(rest), total)
	// Output: 2 2 55
}

func ExampleCheckedFrom() {
	v, err := lav.CheckedFrom[int8](lav.F32(100))
	fmt.Println(v, err)

	_, err = lav.CheckedFrom[int8](lav.F32(300))
	fmt.Println(errors.Is(err, lav.ErrOverflow), err)
	// Output:
	// 100 <nil>
	// true lav: overflow: lav.F32(300) to int8
}

func ExampleSimd_LanesApproxEq() {
	a := lav.FromArray[lav.F64]([4]lav.F64{1, 2, 3, 4})
	b := a.Add(lav.F64x4{}.Splat(1e-9)).Insert(3, 5)
	fmt.Println(a.LanesApproxEq(b, 1e-6, 0))
	// Output: [true true true false]
}
