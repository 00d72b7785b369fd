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

import "testing"

func TestMaskConstructors(t *testing.T) {
	if m := MaskSplat[F32, [8]F32](true); !m.All() || m.CountTrue() != 8 {
		t.Errorf("MaskSplat(true): got %v", m)
	}
	if m := MaskSplat[F32, [8]F32](false); m.Any() || m.FirstTrue() != -1 {
		t.Errorf("MaskSplat(false): got %v", m)
	}
	if m := MaskSplat[F64, [64]F64](true); m.Bits() != ^uint64(0) {
		t.Errorf("MaskSplat 64 lanes: got %x", m.Bits())
	}
	if m := MaskFromBits[F32, [4]F32](0xf5); m.Bits() != 0x5 {
		t.Errorf("MaskFromBits: high bits kept, got %b", m.Bits())
	}
	m := MaskFromBools[F32, [4]F32](false, true, true, false)
	if m.Bits() != 0b0110 || m.FirstTrue() != 1 || m.CountTrue() != 2 {
		t.Errorf("MaskFromBools: got %v", m)
	}
	expectPanic(t, "MaskFromBools length", func() { MaskFromBools[F32, [4]F32](true) })

	f := MaskFlag[F32, [4]F32](2, true)
	if f.Bits() != 0b0100 {
		t.Errorf("MaskFlag(2, true): got %04b", f.Bits())
	}
	f = MaskFlag[F32, [4]F32](2, false)
	if f.Bits() != 0b1011 {
		t.Errorf("MaskFlag(2, false): got %04b", f.Bits())
	}
	if f := MaskFlag[F32, [1]F32](0, true); !f.All() {
		t.Errorf("MaskFlag on one lane: got %v", f)
	}
}

func TestMaskTestSet(t *testing.T) {
	var m Mask[F64, [4]F64]
	m.Set(3, true)
	m.Set(0, true)
	m.Set(0, false)
	for i, want := range []bool{false, false, false, true} {
		if got := m.Test(i); got != want {
			t.Errorf("Test: lane %d: got %v, want %v", i, got, want)
		}
	}
	expectPanic(t, "Test(4)", func() { m.Test(4) })
	expectPanic(t, "Set(-1)", func() { m.Set(-1, true) })
}

func TestMaskLogic(t *testing.T) {
	a := MaskFromBits[F32, [4]F32](0b1100)
	b := MaskFromBits[F32, [4]F32](0b1010)

	tests := []struct {
		name string
		got  Mask[F32, [4]F32]
		want uint64
	}{
		{"And", a.And(b), 0b1000},
		{"Or", a.Or(b), 0b1110},
		{"Xor", a.Xor(b), 0b0110},
		{"AndNot", a.AndNot(b), 0b0100},
		{"Not", a.Not(), 0b0011},
	}
	for _, tt := range tests {
		if got := tt.got.Bits(); got != tt.want {
			t.Errorf("%s: got %04b, want %04b", tt.name, got, tt.want)
		}
	}
}

func TestMaskSelectNegate(t *testing.T) {
	m := MaskFromBools[F32, [4]F32](true, false, true, false)
	v := FromArray[F32]([4]F32{1, 2, 3, 4})
	w := F32x4{}.Splat(-1)
	if got, want := m.Select(v, w).ToArray(), [4]F32{1, -1, 3, -1}; got != want {
		t.Errorf("Select: got %v, want %v", got, want)
	}
	if got, want := m.Negate(v).ToArray(), [4]F32{-1, 2, -3, 4}; got != want {
		t.Errorf("Negate: got %v, want %v", got, want)
	}
}

func TestMaskBoolsString(t *testing.T) {
	m := MaskFromBools[F64, [2]F64](true, false)
	got := m.ToBools()
	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("ToBools: got %v", got)
	}
	if s := m.String(); s != "[true false]" {
		t.Errorf("String: got %q", s)
	}
}
