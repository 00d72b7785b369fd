package main

import "github.com/ajroetker/go-lav/lav"

var _ = lav.Lift[lav.F32](1).Add(lav.F32x2{})

func main() {}
