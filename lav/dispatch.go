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
	"os"
	"strconv"
	"unsafe"
)

// Level is the SIMD instruction set detected on the running CPU.
type Level int

const (
	// LevelScalar indicates no SIMD, or SIMD disabled through LAV_NO_SIMD.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX2 indicates AVX2 instructions (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 instructions (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON instructions (128-bit).
	LevelNEON

	// LevelSVE indicates ARM SVE instructions. Vectors are treated as 128-bit.
	LevelSVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel Level
	currentWidth int
	hasFMA       bool
)

// CurrentLevel returns the detected SIMD level.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes of the detected
// level, for example 32 for AVX2. Scalar mode reports the width of one F64.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the detected level.
func CurrentName() string {
	return currentLevel.String()
}

// HasFMA reports whether the CPU fuses multiply-add in hardware.
func HasFMA() bool {
	return hasFMA
}

// NoSimdEnv checks if the LAV_NO_SIMD environment variable is set.
// When set, detection reports LevelScalar regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("LAV_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 8
}

// PreferredLanes returns the number of R lanes filling one register of the
// detected level, clamped to the supported range. Code that instantiates
// several lane counts can use it to pick one at run time.
//
// For example, with AVX2 (32 bytes):
//   - F32: 32/4 = 8 lanes
//   - F64: 32/8 = 4 lanes
func PreferredLanes[R Real[R]]() int {
	var zero R
	n := currentWidth / int(unsafe.Sizeof(zero))
	return max(1, min(n, MaxLanes))
}
