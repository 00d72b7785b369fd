package main

import "github.com/ajroetker/go-lav/lav"

var _ = lav.PeelFrom[lav.F32](lav.F32(1))

func main() {}
