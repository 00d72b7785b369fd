package main

import "github.com/ajroetker/go-lav/lav"

var _ lav.Mask[lav.F64, [128]lav.F64]

func main() {}
