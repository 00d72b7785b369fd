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
	"math"
	"testing"
)

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func TestSplatAndLanes(t *testing.T) {
	v := F32x8{}.Splat(3)
	if v.Lanes() != 8 {
		t.Errorf("Lanes: got %d, want 8", v.Lanes())
	}
	for i := range v.Lanes() {
		if got := v.Extract(i); got != 3 {
			t.Errorf("Splat: lane %d: got %v, want 3", i, got)
		}
	}
	if got := Splat[F64, [64]F64](1).Lanes(); got != 64 {
		t.Errorf("Lanes: got %d, want 64", got)
	}
	if got := Lift[F64](2).Lanes(); got != 1 {
		t.Errorf("Lanes: got %d, want 1", got)
	}
}

func TestFromSlice(t *testing.T) {
	data := []F32{1, 2, 3, 4, 5}
	v := FromSlice[F32, [4]F32](data)
	if got, want := v.ToArray(), [4]F32{1, 2, 3, 4}; got != want {
		t.Errorf("FromSlice: got %v, want %v", got, want)
	}
	expectPanic(t, "FromSlice short", func() { FromSlice[F32, [8]F32](data) })

	p := FromSlicePartial[F32, [8]F32](data, -1)
	if got, want := p.ToArray(), [8]F32{1, 2, 3, 4, 5, -1, -1, -1}; got != want {
		t.Errorf("FromSlicePartial: got %v, want %v", got, want)
	}
	if got, want := FromSlicePartial[F32, [2]F32](nil, 7).ToArray(), [2]F32{7, 7}; got != want {
		t.Errorf("FromSlicePartial(nil): got %v, want %v", got, want)
	}
}

func TestExtractInsert(t *testing.T) {
	v := FromArray[F64]([4]F64{1, 2, 3, 4})
	w := v.Insert(2, 30)
	if got := w.Extract(2); got != 30 {
		t.Errorf("Insert: got %v, want 30", got)
	}
	if got := v.Extract(2); got != 3 {
		t.Errorf("Insert modified its receiver: got %v, want 3", got)
	}
	expectPanic(t, "Extract(-1)", func() { v.Extract(-1) })
	expectPanic(t, "Extract(4)", func() { v.Extract(4) })
	expectPanic(t, "Insert(4)", func() { v.Insert(4, 0) })

	a := v.AsArray()
	a[0] = 10
	if got := v.Extract(0); got != 10 {
		t.Errorf("AsArray: write not visible, got %v", got)
	}
}

func TestCopyTo(t *testing.T) {
	v := FromArray[F32]([4]F32{1, 2, 3, 4})
	dst := make([]F32, 6)
	v.CopyTo(dst)
	for i, want := range []F32{1, 2, 3, 4, 0, 0} {
		if dst[i] != want {
			t.Errorf("CopyTo: lane %d: got %v, want %v", i, dst[i], want)
		}
	}
	expectPanic(t, "CopyTo short", func() { v.CopyTo(make([]F32, 3)) })

	short := make([]F32, 3)
	if n := v.CopyToPartial(short); n != 3 {
		t.Errorf("CopyToPartial: got %d, want 3", n)
	}
	if short[2] != 3 {
		t.Errorf("CopyToPartial: lane 2: got %v, want 3", short[2])
	}

	masked := []F32{9, 9, 9, 9}
	v.StoreMasked(masked, MaskFromBools[F32, [4]F32](true, false, true, false))
	for i, want := range []F32{1, 9, 3, 9} {
		if masked[i] != want {
			t.Errorf("StoreMasked: lane %d: got %v, want %v", i, masked[i], want)
		}
	}
}

func TestArith(t *testing.T) {
	a := FromArray[F32]([4]F32{1, -2, 7, 9})
	b := FromArray[F32]([4]F32{2, 4, -2, 4})

	tests := []struct {
		name string
		got  F32x4
		want [4]F32
	}{
		{"Add", a.Add(b), [4]F32{3, 2, 5, 13}},
		{"Sub", a.Sub(b), [4]F32{-1, -6, 9, 5}},
		{"Mul", a.Mul(b), [4]F32{2, -8, -14, 36}},
		{"Div", a.Div(b), [4]F32{0.5, -0.5, -3.5, 2.25}},
		{"Rem", a.Rem(b), [4]F32{1, -2, 1, 1}},
		{"Neg", a.Neg(), [4]F32{-1, 2, -7, -9}},
		{"MulAdd", a.MulAdd(b, a), [4]F32{3, -10, -7, 45}},
		{"DivEuclid", FromArray[F32]([4]F32{7, -7, 7, -7}).DivEuclid(FromArray[F32]([4]F32{4, 4, -4, -4})), [4]F32{1, -2, -1, 2}},
		{"RemEuclid", FromArray[F32]([4]F32{7, -7, 7, -7}).RemEuclid(FromArray[F32]([4]F32{4, 4, -4, -4})), [4]F32{3, 1, 3, 1}},
		{"Recip", b.Recip(), [4]F32{0.5, 0.25, -0.5, 0.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, want := range tt.want {
				if got := tt.got.Extract(i); got != want {
					t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, got, want)
				}
			}
		})
	}
}

func TestCompare(t *testing.T) {
	nan := F32(math.NaN())
	a := FromArray[F32]([4]F32{1, 2, nan, 4})
	b := FromArray[F32]([4]F32{1, 3, nan, 3})

	tests := []struct {
		name string
		got  Mask[F32, [4]F32]
		want uint64
	}{
		{"Eq", a.Eq(b), 0b0001},
		{"Ne", a.Ne(b), 0b1110},
		{"Lt", a.Lt(b), 0b0010},
		{"Le", a.Le(b), 0b0011},
		{"Gt", a.Gt(b), 0b1000},
		{"Ge", a.Ge(b), 0b1001},
		{"IsNaN", a.IsNaN(), 0b0100},
		{"IsFinite", a.IsFinite(), 0b1011},
	}
	for _, tt := range tests {
		if got := tt.got.Bits(); got != tt.want {
			t.Errorf("%s: got %04b, want %04b", tt.name, got, tt.want)
		}
	}
}

func TestClassification(t *testing.T) {
	inf := F64(math.Inf(1))
	sub := F64(math.SmallestNonzeroFloat64)
	negZero := F64(math.Copysign(0, -1))
	v := FromArray[F64]([8]F64{1, -inf, inf, sub, 0, negZero, F64(math.NaN()), -2})

	tests := []struct {
		name string
		got  Mask[F64, [8]F64]
		want uint64
	}{
		{"IsInf", v.IsInf(), 0b00000110},
		{"IsFinite", v.IsFinite(), 0b10111001},
		{"IsNormal", v.IsNormal(), 0b10000001},
		{"IsSubnormal", v.IsSubnormal(), 0b00001000},
		{"IsSignNegative", v.IsSignNegative(), 0b10100010},
	}
	for _, tt := range tests {
		if got := tt.got.Bits(); got != tt.want {
			t.Errorf("%s: got %08b, want %08b", tt.name, got, tt.want)
		}
	}
	// The sign of NaN is its sign bit; math.NaN is positive.
	if got := v.IsSignPositive().Bits(); got != 0b01011101 {
		t.Errorf("IsSignPositive: got %08b, want %08b", got, 0b01011101)
	}
}

func TestSelect(t *testing.T) {
	a := FromArray[F32]([4]F32{1, 2, 3, 4})
	b := F32x4{}.Splat(0)
	got := a.Select(a.Gt(F32x4{}.Splat(2)), b)
	if want := [4]F32{0, 0, 3, 4}; got.ToArray() != want {
		t.Errorf("Select: got %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	if got, want := FromArray[F32]([2]F32{1, 2.5}).String(), "[1 2.5]"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
