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
	"unsafe"

	"golang.org/x/exp/constraints"
)

// AbsSub returns |a - b| without wrapping.
func AbsSub[U constraints.Unsigned](a, b U) U {
	if a > b {
		return a - b
	}
	return b - a
}

// SaturatingAdd returns a + b, or the maximum value of U on overflow.
func SaturatingAdd[U constraints.Unsigned](a, b U) U {
	s := a + b
	if s < a {
		return ^U(0)
	}
	return s
}

// SaturatingSub returns a - b, or 0 when b > a.
func SaturatingSub[U constraints.Unsigned](a, b U) U {
	if b > a {
		return 0
	}
	return a - b
}

// bitsMax returns the largest bit pattern of lane kind R.
func bitsMax[R Real[R]]() uint64 {
	return ^uint64(0) >> (64 - bitSize[R]())
}

// BitsSlice32 reinterprets s as its bit patterns. The result aliases s.
func BitsSlice32(s []F32) []uint32 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// F32Slice reinterprets bit patterns as F32 lanes. The result aliases b.
func F32Slice(b []uint32) []F32 {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*F32)(unsafe.Pointer(unsafe.SliceData(b))), len(b))
}

// BitsSlice64 reinterprets s as its bit patterns. The result aliases s.
func BitsSlice64(s []F64) []uint64 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// F64Slice reinterprets bit patterns as F64 lanes. The result aliases b.
func F64Slice(b []uint64) []F64 {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*F64)(unsafe.Pointer(unsafe.SliceData(b))), len(b))
}

// Float32s views s as plain float32 values for slice libraries. The result
// aliases s.
func Float32s(s []F32) []float32 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// Float64s views s as plain float64 values. The result aliases s.
func Float64s(s []F64) []float64 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
