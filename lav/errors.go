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
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when a value's magnitude exceeds the target range.
	ErrOverflow = errors.New("lav: overflow")

	// ErrPrecisionLoss is returned when a value is in range but cannot be
	// represented exactly by the target type.
	ErrPrecisionLoss = errors.New("lav: precision loss")

	// ErrOutOfRange is returned for values outside the target's domain, such
	// as NaN into an integer or a negative value into an unsigned type.
	ErrOutOfRange = errors.New("lav: out of range")

	// ErrLaneMismatch is returned by vector conversions between different
	// lane counts.
	ErrLaneMismatch = errors.New("lav: lane count mismatch")

	// ErrWidthMismatch is returned by WrapFrom between types of different
	// bit widths.
	ErrWidthMismatch = errors.New("lav: bit width mismatch")

	// ErrReflexive is returned by WrapFrom when source and target are the
	// same type.
	ErrReflexive = errors.New("lav: reflexive conversion")
)

// ConversionKind classifies a failed conversion.
type ConversionKind uint8

const (
	KindOverflow ConversionKind = iota
	KindPrecisionLoss
	KindOutOfRange
	KindLaneMismatch
	KindWidthMismatch
	KindReflexive
)

var kindErrors = [...]error{
	KindOverflow:      ErrOverflow,
	KindPrecisionLoss: ErrPrecisionLoss,
	KindOutOfRange:    ErrOutOfRange,
	KindLaneMismatch:  ErrLaneMismatch,
	KindWidthMismatch: ErrWidthMismatch,
	KindReflexive:     ErrReflexive,
}

// String returns the message of the kind's sentinel error.
func (k ConversionKind) String() string {
	if int(k) < len(kindErrors) {
		return kindErrors[k].Error()
	}
	return "lav: unknown conversion failure"
}

// ConversionError describes a conversion that could not be performed.
//
// Use errors.Is with ErrOverflow, ErrPrecisionLoss, ErrOutOfRange and the
// other sentinels to test the kind.
type ConversionError struct {
	Kind  ConversionKind
	From  string // source type
	To    string // target type
	Value string // source value, formatted with %v
	Lane  int    // failing lane of a vector conversion, -1 for scalars
}

func (e *ConversionError) Error() string {
	if e.Lane >= 0 {
		return fmt.Sprintf("%v: lane %d: %s(%s) to %s", e.Kind, e.Lane, e.From, e.Value, e.To)
	}
	return fmt.Sprintf("%v: %s(%s) to %s", e.Kind, e.From, e.Value, e.To)
}

func (e *ConversionError) Unwrap() error {
	if int(e.Kind) < len(kindErrors) {
		return kindErrors[e.Kind]
	}
	return nil
}
