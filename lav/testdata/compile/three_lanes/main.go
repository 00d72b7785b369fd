package main

import "github.com/ajroetker/go-lav/lav"

var _ lav.Simd[lav.F32, [3]lav.F32]

func main() {}
