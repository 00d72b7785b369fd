package main

import "github.com/ajroetker/go-lav/lav"

var _ lav.LaneCount[lav.F32, [0]lav.F32]

func main() {}
