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
	"reflect"
	"unsafe"
)

type numClass uint8

const (
	classSigned numClass = iota
	classUnsigned
	classFloat
)

type numInfo struct {
	class numClass
	bits  int
}

func infoOf[T Number]() numInfo {
	var zero T
	info := numInfo{bits: int(unsafe.Sizeof(zero)) * 8}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		info.class = classSigned
	case reflect.Float32, reflect.Float64:
		info.class = classFloat
	default:
		info.class = classUnsigned
	}
	return info
}

// intRange returns the integer range of info as float64 bounds, lo inclusive
// and hi exclusive. Both bounds are powers of two and therefore exact.
func (info numInfo) intRange() (lo, hi float64) {
	if info.class == classSigned {
		hi = math.Ldexp(1, info.bits-1)
		return -hi, hi
	}
	return 0, math.Ldexp(1, info.bits)
}

func (info numInfo) intMin() int64 {
	if info.class == classSigned {
		return -1 << (info.bits - 1)
	}
	return 0
}

func (info numInfo) intMax() uint64 {
	if info.class == classSigned {
		return 1<<(info.bits-1) - 1
	}
	return ^uint64(0) >> (64 - info.bits)
}

func conversionError[D, S Number](kind ConversionKind, s S) *ConversionError {
	var zero D
	return &ConversionError{
		Kind:  kind,
		From:  fmt.Sprintf("%T", s),
		To:    fmt.Sprintf("%T", zero),
		Value: fmt.Sprint(s),
		Lane:  -1,
	}
}

// CheckedFrom converts s to D, failing instead of rounding, wrapping or
// saturating:
//
//   - float to integer fails with ErrOutOfRange for NaN, infinities and
//     negative values into unsigned types, with ErrOverflow beyond the range
//     of D and with ErrPrecisionLoss for non-integral values;
//   - integer to integer fails with ErrOutOfRange for negative values into
//     unsigned types and ErrOverflow otherwise;
//   - integer to float fails with ErrPrecisionLoss unless the value round
//     trips exactly;
//   - float to float fails with ErrOverflow when a finite value becomes
//     infinite and with ErrPrecisionLoss when it must be rounded. NaN and
//     infinities convert.
func CheckedFrom[D, S Number](s S) (D, error) {
	src, dst := infoOf[S](), infoOf[D]()
	fail := func(kind ConversionKind) (D, error) {
		return 0, conversionError[D](kind, s)
	}
	switch src.class {
	case classFloat:
		f := float64(s)
		if dst.class == classFloat {
			d := D(f)
			back := float64(d)
			switch {
			case math.IsNaN(f):
				return d, nil
			case math.IsInf(back, 0) && !math.IsInf(f, 0):
				return fail(KindOverflow)
			case back != f:
				return fail(KindPrecisionLoss)
			}
			return d, nil
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fail(KindOutOfRange)
		}
		lo, hi := dst.intRange()
		switch {
		case f < 0 && dst.class == classUnsigned:
			return fail(KindOutOfRange)
		case f < lo || f >= hi:
			return fail(KindOverflow)
		case f != math.Trunc(f):
			return fail(KindPrecisionLoss)
		}
		return D(f), nil

	case classSigned:
		i := int64(s)
		switch dst.class {
		case classFloat:
			d := D(i)
			back := float64(d)
			if back < -0x1p63 || back >= 0x1p63 || int64(back) != i {
				return fail(KindPrecisionLoss)
			}
			return d, nil
		case classUnsigned:
			if i < 0 {
				return fail(KindOutOfRange)
			}
			if uint64(i) > dst.intMax() {
				return fail(KindOverflow)
			}
		default:
			if i < dst.intMin() || i > int64(dst.intMax()) {
				return fail(KindOverflow)
			}
		}
		return D(i), nil

	default:
		u := uint64(s)
		if dst.class == classFloat {
			d := D(u)
			back := float64(d)
			if back >= 0x1p64 || uint64(back) != u {
				return fail(KindPrecisionLoss)
			}
			return d, nil
		}
		if u > dst.intMax() {
			return fail(KindOverflow)
		}
		return D(u), nil
	}
}

// CheckedInto stores the CheckedFrom conversion of s in *d. On failure *d is
// left unchanged.
func CheckedInto[D, S Number](s S, d *D) error {
	v, err := CheckedFrom[D](s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// UncheckedFrom converts s to D without failing. Values that D cannot hold
// map to safe but unspecified results: float to integer truncates toward
// zero, saturates at the bounds of D and maps NaN to zero; integer to
// integer wraps; conversions to floats round to nearest.
func UncheckedFrom[D, S Number](s S) D {
	src, dst := infoOf[S](), infoOf[D]()
	if src.class != classFloat || dst.class == classFloat {
		return D(s)
	}
	f := float64(s)
	if math.IsNaN(f) {
		return 0
	}
	lo, hi := dst.intRange()
	switch {
	case f < lo:
		return D(dst.intMin())
	case f >= hi:
		return D(dst.intMax())
	}
	return D(f)
}

// UncheckedInto stores the UncheckedFrom conversion of s in *d.
func UncheckedInto[D, S Number](s S, d *D) {
	*d = UncheckedFrom[D](s)
}

// CheckedSimd converts every lane of v with CheckedFrom. It fails with
// ErrLaneMismatch unless both shapes have the same lane count and otherwise
// reports the first failing lane.
func CheckedSimd[D Real[D], B Lanes[D], S Real[S], A Lanes[S]](v Simd[S, A]) (Simd[D, B], error) {
	var out Simd[D, B]
	if n, m := len(v.lanes), len(out.lanes); n != m {
		return out, &ConversionError{
			Kind:  KindLaneMismatch,
			From:  fmt.Sprintf("%T", v),
			To:    fmt.Sprintf("%T", out),
			Value: fmt.Sprintf("%d lanes", n),
			Lane:  -1,
		}
	}
	for i := range len(v.lanes) {
		d, err := CheckedFrom[D](v.lanes[i])
		if err != nil {
			ce := err.(*ConversionError)
			ce.Lane = i
			return Simd[D, B]{}, ce
		}
		out.lanes[i] = d
	}
	return out, nil
}

// UncheckedSimd converts the first min(N, M) lanes of v with UncheckedFrom
// and leaves any remaining lanes zero.
func UncheckedSimd[D Real[D], B Lanes[D], S Real[S], A Lanes[S]](v Simd[S, A]) Simd[D, B] {
	var out Simd[D, B]
	for i := range min(len(v.lanes), len(out.lanes)) {
		out.lanes[i] = UncheckedFrom[D](v.lanes[i])
	}
	return out
}
