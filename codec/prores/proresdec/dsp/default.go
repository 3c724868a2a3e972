/*
DESCRIPTION
  default.go implements a straightforward pure-Go Kernel: a direct
  (non-fast) 8x8 inverse DCT, elementwise dequantization, level shift and
  clip to the raw sample depth, little-endian 16-bit store.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dsp

import "math"

// Default is a pure-Go Kernel using a direct (not fast) separable inverse
// DCT. It's correct but not optimized; production callers wanting SIMD or
// hardware-backed transforms should supply their own Kernel.
type Default struct{}

var _ Kernel = Default{}

// cosTable[u][x] = cos((2x+1)*u*pi/16), precomputed once.
var cosTable = func() [8][8]float64 {
	var t [8][8]float64
	for u := 0; u < 8; u++ {
		for x := 0; x < 8; x++ {
			t[u][x] = math.Cos(float64(2*x+1) * float64(u) * math.Pi / 16)
		}
	}
	return t
}()

func idctCoeff(u int) float64 {
	if u == 0 {
		return 1 / math.Sqrt2
	}
	return 1
}

// ClearBlock zeroes the 64 coefficients of block.
func (Default) ClearBlock(block *[64]int16) {
	for i := range block {
		block[i] = 0
	}
}

// idct8x8 performs a direct 2D inverse DCT on an 8x8 block of
// dequantized coefficients, row-major (in[y*8+x]).
func idct8x8(in *[64]float64) [64]float64 {
	var tmp, out [64]float64

	// Inverse DCT along columns (over u, for each v row and output x).
	for v := 0; v < 8; v++ {
		for x := 0; x < 8; x++ {
			var sum float64
			for u := 0; u < 8; u++ {
				sum += idctCoeff(u) * in[v*8+u] * cosTable[u][x]
			}
			tmp[v*8+x] = sum / 2
		}
	}

	// Inverse DCT along rows (over v, for each output x column and y).
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			var sum float64
			for v := 0; v < 8; v++ {
				sum += idctCoeff(v) * tmp[v*8+x] * cosTable[v][y]
			}
			out[y*8+x] = sum / 2
		}
	}
	return out
}

// IDCTPut dequantizes coeffs, performs the inverse DCT, level-shifts and
// clips to the raw sample depth, and stores the 8x8 result as
// little-endian 16-bit samples at dst, strided by strideBytes.
func (Default) IDCTPut(dst []byte, strideBytes int, coeffs *[64]int16, qmat *[64]int16, bitDepth int) {
	var deq [64]float64
	for i := range deq {
		deq[i] = float64(coeffs[i]) * float64(qmat[i])
	}

	spatial := idct8x8(&deq)

	offset := float64(int(1) << uint(bitDepth-1))
	maxVal := (1 << uint(bitDepth)) - 1

	for y := 0; y < 8; y++ {
		row := dst[y*strideBytes:]
		for x := 0; x < 8; x++ {
			v := int(math.Round(spatial[y*8+x])) + int(offset)
			if v < 0 {
				v = 0
			} else if v > maxVal {
				v = maxVal
			}
			row[2*x] = byte(v)
			row[2*x+1] = byte(v >> 8)
		}
	}
}

// Permutation returns the identity permutation: this kernel consumes
// coefficients directly in zig-zag-descan (row-major natural) order, so
// no reordering is required ahead of IDCTPut.
func (Default) Permutation(bitDepth int) [64]int {
	var p [64]int
	for i := range p {
		p[i] = i
	}
	return p
}
