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

//go:build amd64.v4

package lav

// NativeWidth is the vector register width in bytes the build target
// guarantees: AVX-512 on GOAMD64=v4.
const NativeWidth = 64

const (
	NativeLanesF32 = NativeWidth / 4
	NativeLanesF64 = NativeWidth / 8
)
