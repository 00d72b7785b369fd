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
	"reflect"
	"unsafe"
)

func wordBits[T Word](v T) uint64 {
	p := unsafe.Pointer(&v)
	switch unsafe.Sizeof(v) {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	default:
		return *(*uint64)(p)
	}
}

func fromWordBits[T Word](u uint64) T {
	var v T
	p := unsafe.Pointer(&v)
	switch unsafe.Sizeof(v) {
	case 1:
		*(*uint8)(p) = uint8(u)
	case 2:
		*(*uint16)(p) = uint16(u)
	case 4:
		*(*uint32)(p) = uint32(u)
	default:
		*(*uint64)(p) = u
	}
	return v
}

func checkWrap[D, S Word]() *ConversionError {
	var d D
	var s S
	kind := KindWidthMismatch
	switch {
	case reflect.TypeFor[D]() == reflect.TypeFor[S]():
		kind = KindReflexive
	case unsafe.Sizeof(d) == unsafe.Sizeof(s):
		return nil
	}
	return &ConversionError{
		Kind:  kind,
		From:  fmt.Sprintf("%T", s),
		To:    fmt.Sprintf("%T", d),
		Value: fmt.Sprintf("%d bits", unsafe.Sizeof(s)*8),
		Lane:  -1,
	}
}

// WrapFrom reinterprets the bit pattern of s as a D of the same width, such
// as F32 to uint32 or int64 to uint64. It fails with ErrWidthMismatch for
// types of different widths and with ErrReflexive when D and S are the same
// type.
func WrapFrom[D, S Word](s S) (D, error) {
	if err := checkWrap[D, S](); err != nil {
		return 0, err
	}
	return fromWordBits[D](wordBits(s)), nil
}

// WrapInto stores the WrapFrom reinterpretation of s in *d.
func WrapInto[D, S Word](s S, d *D) error {
	v, err := WrapFrom[D](s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// WrapUnchecked reinterprets the bit pattern of s as a D without checking
// widths: a wider source is truncated to its low bits and a narrower one is
// zero extended. For equal widths it is the inverse of WrapFrom.
func WrapUnchecked[D, S Word](s S) D {
	return fromWordBits[D](wordBits(s))
}

// WrapUncheckedInto stores the WrapUnchecked reinterpretation of s in *d.
func WrapUncheckedInto[D, S Word](s S, d *D) {
	*d = WrapUnchecked[D](s)
}

// WrapSlice reinterprets s as a slice of D without copying. It fails like
// WrapFrom. The result aliases s.
func WrapSlice[D, S Word](s []S) ([]D, error) {
	if err := checkWrap[D, S](); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*D)(unsafe.Pointer(unsafe.SliceData(s))), len(s)), nil
}
