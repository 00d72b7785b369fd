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

package lav_test

import (
	"os/exec"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestCompileRejects type-checks the programs under testdata/compile and
// checks that misuse of lane counts and peel conversions is a build error.
func TestCompileRejects(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}

	tests := []struct {
		dir  string
		want []string // substrings of the type error, empty for a valid program
	}{
		{"valid", nil},
		{"peel_same", []string{"does not satisfy", "Peeler"}},
		{"three_lanes", []string{"does not satisfy", "Lanes"}},
		{"zero_lanes", []string{"does not satisfy", "Lanes"}},
		{"wide_mask", []string{"does not satisfy", "Lanes"}},
		{"mixed_lanes", []string{"cannot use"}},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax}
			pkgs, err := packages.Load(cfg, "./testdata/compile/"+tt.dir)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(pkgs) != 1 {
				t.Fatalf("Load: got %d packages, want 1", len(pkgs))
			}

			var msgs []string
			for _, e := range pkgs[0].Errors {
				msgs = append(msgs, e.Msg)
			}
			got := strings.Join(msgs, "\n")
			if tt.want == nil {
				if got != "" {
					t.Errorf("valid program: unexpected errors:\n%s", got)
				}
				return
			}
			if got == "" {
				t.Fatalf("%s compiled, want a type error", tt.dir)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("%s: error %q does not mention %q", tt.dir, got, w)
				}
			}
		})
	}
}
