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

package dot

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-lav/lav"
)

// DotBatch computes multiple dot products efficiently.
// For each i, computes the dot product of queries[i] and keys[i].
//
// Returns a slice of results with length min(len(queries), len(keys)).
func DotBatch(queries, keys [][]lav.F32) []lav.F32 {
	n := min(len(queries), len(keys))
	results := make([]lav.F32, n)

	for i := range n {
		results[i] = DotF32(queries[i], keys[i])
	}

	return results
}

// DotBatchF64 computes multiple dot products for F64 slices.
func DotBatchF64(queries, keys [][]lav.F64) []lav.F64 {
	n := min(len(queries), len(keys))
	results := make([]lav.F64, n)

	for i := range n {
		results[i] = DotF64(queries[i], keys[i])
	}

	return results
}

// DotBatchParallel is DotBatch spread over at most workers goroutines, or
// GOMAXPROCS if workers <= 0. It stops early and returns the context error
// if ctx is cancelled.
func DotBatchParallel(ctx context.Context, queries, keys [][]lav.F32, workers int) ([]lav.F32, error) {
	n := min(len(queries), len(keys))
	results := make([]lav.F32, n)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = DotF32(queries[i], keys[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
