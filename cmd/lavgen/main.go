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

// Command lavgen generates the lane-count specific declarations of package
// lav: the F32xN and F64xN aliases, their capability assertions, and the
// table of peel conversions between the two lane kinds.
//
// Usage:
//
//	lavgen -output aliases_gen.go
//	lavgen -output aliases_gen.go -lanes 1,2,4,8 -kinds f32,f64
//
// Or via go:generate in package lav:
//
//	//go:generate go run ../cmd/lavgen -output aliases_gen.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputFile = flag.String("output", "aliases_gen.go", "Output Go file")
	packageOut = flag.String("pkg", "lav", "Output package name")
	kinds      = flag.String("kinds", "f32,f64", "Comma-separated lane kinds")
	laneCounts = flag.String("lanes", "all", "Comma-separated lane counts or 'all'")
)

func main() {
	flag.Parse()

	lanes, err := parseLanes(*laneCounts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Package: *packageOut,
		Kinds:   parseKinds(*kinds),
		Lanes:   lanes,
		Output:  *outputFile,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s for kinds %s and lanes %v\n",
		*outputFile, strings.Join(gen.Kinds, ", "), gen.Lanes)
}
