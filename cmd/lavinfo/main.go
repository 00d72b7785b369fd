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

// Package main provides a diagnostic tool printing the SIMD capabilities lav
// detects on the running machine.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-lav/lav"
	"github.com/ajroetker/go-lav/lav/contrib/dot"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "lavinfo",
		Short: "Print the SIMD capabilities detected by lav",
		Long: `lavinfo prints the dispatch level, register width and lane counts lav
uses on this machine, together with the CPU feature flags they derive from.

Set LAV_NO_SIMD=1 to see the scalar fallback.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			writeSummary(w)
			fmt.Fprintln(w)
			writeLanes(w)
			fmt.Fprintln(w)
			writeFeatures(w)
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log detection details to stderr")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "lanes",
		Short: "Print native and preferred lane counts",
		Run: func(cmd *cobra.Command, args []string) {
			writeLanes(cmd.OutOrStdout())
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "features",
		Short: "Print CPU feature flags",
		Run: func(cmd *cobra.Command, args []string) {
			writeFeatures(cmd.OutOrStdout())
		},
	})

	var size int
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Compare the lav and vek dot products on a ramp",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), size)
		},
	}
	checkCmd.Flags().IntVar(&size, "size", 1000, "Vector length")
	rootCmd.AddCommand(checkCmd)

	return rootCmd
}

func writeSummary(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "lav dispatch level: %s\n", lav.CurrentName())
	fmt.Fprintf(w, "lav dispatch width: %d bytes\n", lav.CurrentWidth())
	fmt.Fprintf(w, "lav HasFMA: %v\n", lav.HasFMA())
	fmt.Fprintf(w, "lav LAV_NO_SIMD: %v\n", lav.NoSimdEnv())

	info := vek32.Info()
	fmt.Fprintf(w, "vek acceleration: %v\n", info.Acceleration)
	slog.Debug("vek32 runtime", "features", info.CPUFeatures)
}

func writeLanes(w io.Writer) {
	fmt.Fprintf(w, "native width: %d bytes\n", lav.NativeWidth)
	fmt.Fprintf(w, "native lanes: F32 %d, F64 %d\n", lav.NativeLanesF32, lav.NativeLanesF64)
	fmt.Fprintf(w, "preferred lanes: F32 %d, F64 %d\n", lav.PreferredLanes[lav.F32](), lav.PreferredLanes[lav.F64]())
	fmt.Fprintf(w, "supported lanes: %v\n", lav.SupportedLanes)
}

func writeFeatures(w io.Writer) {
	switch runtime.GOARCH {
	case "amd64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(w, "  HasSSE2:     %v\n", cpu.X86.HasSSE2)
		fmt.Fprintf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
		fmt.Fprintf(w, "  HasAVX:      %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasFMA:      %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
		fmt.Fprintf(w, "  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
	case "arm64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFP:    %v\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasSVE:   %v\n", cpu.ARM64.HasSVE)
		fmt.Fprintf(w, "  HasSVE2:  %v\n", cpu.ARM64.HasSVE2)
	default:
		fmt.Fprintf(w, "no feature flags for %s\n", runtime.GOARCH)
	}
}

func runCheck(w io.Writer, size int) error {
	if size <= 0 {
		return fmt.Errorf("size must be positive, got %d", size)
	}
	a := make([]lav.F32, size)
	b := make([]lav.F32, size)
	for i := range a {
		a[i] = lav.F32(i%17) * 0.25
		b[i] = lav.F32(i%5) - 2
	}

	generic := dot.Dot[lav.F32, [8]lav.F32](a, b)
	dispatched := dot.DotF32(a, b)
	slog.Debug("dot products", "size", size, "generic", generic, "dispatched", dispatched)

	// Summation order differs between the two, so compare relative to the
	// magnitude of the terms.
	scale := dot.Norm[lav.F32, [8]lav.F32](a) * dot.Norm[lav.F32, [8]lav.F32](b)
	if !generic.ApproxEq(dispatched, 1e-5*max(scale, 1), 4) {
		return fmt.Errorf("dot product mismatch: generic %v, dispatched %v", generic, dispatched)
	}
	fmt.Fprintf(w, "dot(%d): %v\n", size, dispatched)
	return nil
}
