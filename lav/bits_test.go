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

func TestUnsignedHelpers(t *testing.T) {
	if got := AbsSub[uint32](3, 10); got != 7 {
		t.Errorf("AbsSub(3, 10) = %d, want 7", got)
	}
	if got := AbsSub[uint64](10, 3); got != 7 {
		t.Errorf("AbsSub(10, 3) = %d, want 7", got)
	}
	if got := SaturatingAdd[uint8](200, 100); got != math.MaxUint8 {
		t.Errorf("SaturatingAdd(200, 100) = %d, want 255", got)
	}
	if got := SaturatingAdd[uint8](20, 100); got != 120 {
		t.Errorf("SaturatingAdd(20, 100) = %d, want 120", got)
	}
	if got := SaturatingSub[uint16](3, 10); got != 0 {
		t.Errorf("SaturatingSub(3, 10) = %d, want 0", got)
	}
	if got := SaturatingSub[uint16](10, 3); got != 7 {
		t.Errorf("SaturatingSub(10, 3) = %d, want 7", got)
	}
}

func TestSimdBitsRoundTrip(t *testing.T) {
	// A NaN with a payload survives the trip through the bit view.
	payload := F32FromBits(0x7fc0_1234)
	v := FromArray[F32]([4]F32{1, F32(math.Copysign(0, -1)), payload, F32(math.Inf(-1))})
	b := v.Bits()
	for i := range 4 {
		if got, want := b.Lane(i), uint64(v.Extract(i).ToBits()); got != want {
			t.Errorf("Lane: lane %d: got %#x, want %#x", i, got, want)
		}
	}
	if got := b.Simd().Extract(2).ToBits(); got != 0x7fc0_1234 {
		t.Errorf("Simd: NaN payload lost, got %#x", got)
	}
	if got := b.Lanes(); got != 4 {
		t.Errorf("Lanes = %d, want 4", got)
	}
}

func TestSimdBitsOps(t *testing.T) {
	top := uint64(math.MaxUint32)
	a := BitsFromSlice[F32, [4]F32]([]uint64{1, top - 1, 10, 0xf0})
	b := BitsFromSlice[F32, [4]F32]([]uint64{2, 5, 3, 0x3c})

	tests := []struct {
		name   string
		result SimdBits[F32, [4]F32]
		expect []uint64
	}{
		{"SaturatingAdd", a.SaturatingAdd(b), []uint64{3, top, 13, 0x12c}},
		{"SaturatingSub", a.SaturatingSub(b), []uint64{0, top - 6, 7, 0xb4}},
		{"AbsSub", a.AbsSub(b), []uint64{1, top - 6, 7, 0xb4}},
		{"And", a.And(b), []uint64{0, 4, 2, 0x30}},
		{"Or", a.Or(b), []uint64{3, top, 11, 0xfc}},
		{"Xor", a.Xor(b), []uint64{3, top - 4, 9, 0xcc}},
		{"Not", b.Not(), []uint64{top - 2, top - 5, top - 3, top - 0x3c}},
		{"Shl", a.Shl(4), []uint64{0x10, top - 0x1f, 0xa0, 0xf00}},
		{"Shr", a.Shr(4), []uint64{0, 0x0fff_ffff, 0, 0xf}},
		{"SplatBits", SplatBits[F32, [4]F32](1 << 40), []uint64{0, 0, 0, 0}},
		{"WithLane", b.WithLane(1, 99), []uint64{2, 99, 3, 0x3c}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.ToSlice()
			for i, want := range tt.expect {
				if got[i] != want {
					t.Errorf("%s: lane %d: got %#x, want %#x", tt.name, i, got[i], want)
				}
			}
		})
	}

	if got := a.Lt(b).Bits(); got != 0b0001 {
		t.Errorf("Lt = %04b, want 0001", got)
	}
	if got := a.Ge(b).Bits(); got != 0b1110 {
		t.Errorf("Ge = %04b, want 1110", got)
	}
	if got := a.Eq(a).Bits(); got != 0b1111 {
		t.Errorf("Eq = %04b, want 1111", got)
	}
	if got := a.Ne(b).Bits() | a.Le(b).Bits()<<4 | a.Gt(b).Bits()<<8; got != 0b1110_0001_1111 {
		t.Errorf("Ne|Le|Gt = %012b", got)
	}
	expectPanic(t, "BitsFromSlice short", func() { BitsFromSlice[F64, [4]F64]([]uint64{1}) })
}

func TestSimdBitsF64Saturates(t *testing.T) {
	a := SplatBits[F64, [2]F64](math.MaxUint64 - 1)
	if got := a.SaturatingAdd(SplatBits[F64, [2]F64](5)).Lane(0); got != math.MaxUint64 {
		t.Errorf("SaturatingAdd = %#x, want max", got)
	}
}

func TestSliceReinterpret(t *testing.T) {
	f := []F32{1, -2}
	u := BitsSlice32(f)
	if u[0] != 0x3f80_0000 || u[1] != 0xc000_0000 {
		t.Errorf("BitsSlice32 = %#x", u)
	}
	u[0] = 0x4000_0000
	if f[0] != 2 {
		t.Errorf("BitsSlice32 does not alias: f[0] = %v", f[0])
	}
	if back := F32Slice(u); &back[0] != &f[0] {
		t.Error("F32Slice does not alias")
	}

	d := []F64{0.5}
	if got := BitsSlice64(d)[0]; got != math.Float64bits(0.5) {
		t.Errorf("BitsSlice64 = %#x", got)
	}
	if got := F64Slice([]uint64{math.Float64bits(3)})[0]; got != 3 {
		t.Errorf("F64Slice = %v", got)
	}
	if BitsSlice32(nil) != nil || F64Slice([]uint64{}) != nil {
		t.Error("empty input should give a nil slice")
	}

	plain := Float32s(f)
	plain[1] = 0.25
	if f[1] != 0.25 || len(plain) != len(f) {
		t.Errorf("Float32s does not alias: f = %v", f)
	}
	if got := Float64s(d); len(got) != 1 || got[0] != 0.5 || &got[0] != (*float64)(&d[0]) {
		t.Errorf("Float64s = %v, want an alias of %v", got, d)
	}
	if Float32s(nil) != nil || Float64s([]F64{}) != nil {
		t.Error("empty input should give a nil slice")
	}
}
