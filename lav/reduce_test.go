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
	"fmt"
	"math"
	"testing"
)

// checkBroadcastSum verifies that summing a splatted value is exact for a
// lane count.
func checkBroadcastSum[R Real[R], A Lanes[R]](t *testing.T, x R) {
	t.Helper()
	v := Splat[R, A](x)
	want := x * R(v.Lanes())
	if got := v.ReduceSum(); got != want {
		t.Errorf("ReduceSum of %d lanes of %v: got %v, want %v", v.Lanes(), x, got, want)
	}
	if got := v.ReduceMin(); got != x {
		t.Errorf("ReduceMin of %d lanes: got %v, want %v", v.Lanes(), got, x)
	}
	if got := v.ReduceMax(); got != x {
		t.Errorf("ReduceMax of %d lanes: got %v, want %v", v.Lanes(), got, x)
	}
}

func TestReduceBroadcast(t *testing.T) {
	for _, x := range []float64{0, 1, 1.5, -0.1, 1e30} {
		t.Run(fmt.Sprint(x), func(t *testing.T) {
			checkBroadcastSum[F32, [1]F32](t, F32(x))
			checkBroadcastSum[F32, [2]F32](t, F32(x))
			checkBroadcastSum[F32, [4]F32](t, F32(x))
			checkBroadcastSum[F32, [8]F32](t, F32(x))
			checkBroadcastSum[F32, [16]F32](t, F32(x))
			checkBroadcastSum[F32, [32]F32](t, F32(x))
			checkBroadcastSum[F32, [64]F32](t, F32(x))
			checkBroadcastSum[F64, [1]F64](t, F64(x))
			checkBroadcastSum[F64, [2]F64](t, F64(x))
			checkBroadcastSum[F64, [4]F64](t, F64(x))
			checkBroadcastSum[F64, [8]F64](t, F64(x))
			checkBroadcastSum[F64, [16]F64](t, F64(x))
			checkBroadcastSum[F64, [32]F64](t, F64(x))
			checkBroadcastSum[F64, [64]F64](t, F64(x))
		})
	}
}

func TestReduce(t *testing.T) {
	v := FromArray[F32]([4]F32{1, 2, 3, 4})
	if got := v.ReduceSum(); got != 10 {
		t.Errorf("ReduceSum: got %v, want 10", got)
	}
	if got := v.ReduceProduct(); got != 24 {
		t.Errorf("ReduceProduct: got %v, want 24", got)
	}
	w := FromArray[F64]([8]F64{5, -3, 8, 0, 2, 9, -7, 1})
	if got := w.ReduceMin(); got != -7 {
		t.Errorf("ReduceMin: got %v, want -7", got)
	}
	if got := w.ReduceMax(); got != 9 {
		t.Errorf("ReduceMax: got %v, want 9", got)
	}
}

func TestReduceNaN(t *testing.T) {
	nan := F64(math.NaN())
	v := FromArray[F64]([4]F64{1, nan, 3, 4})
	for name, got := range map[string]F64{
		"ReduceSum":     v.ReduceSum(),
		"ReduceProduct": v.ReduceProduct(),
		"ReduceMin":     v.ReduceMin(),
		"ReduceMax":     v.ReduceMax(),
	} {
		if !got.IsNaN() {
			t.Errorf("%s: got %v, want NaN", name, got)
		}
	}
	// Lane-wise Min ignores a NaN operand, unlike the reduction.
	if got := v.Min(F64x4{}.Splat(2)).Extract(1); got != 2 {
		t.Errorf("Min with NaN lane: got %v, want 2", got)
	}
}
