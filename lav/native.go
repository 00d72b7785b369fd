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

// Native vectors fill one register of the build target. Generic code that
// wants a good default width without hard-coding one can use these.
type (
	F32xNative = Simd[F32, [NativeLanesF32]F32]
	F64xNative = Simd[F64, [NativeLanesF64]F64]
)
