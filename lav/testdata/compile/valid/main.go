package main

import "github.com/ajroetker/go-lav/lav"

var wide lav.F64 = lav.PeelFrom[lav.F64](lav.F32(1))

var narrow lav.F32 = lav.PeelFrom[lav.F32](lav.F64(1))

var peeled = lav.PeelF32x4(lav.F32x4{})

var one lav.Simd[lav.F32, [1]lav.F32]

var count lav.LaneCount[lav.F64, [64]lav.F64]

var mask lav.Mask[lav.F32, [8]lav.F32]

func main() {
	_, _, _, _, _, _ = wide, narrow, peeled, one, count, mask
}
