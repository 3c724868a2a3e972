/*
DESCRIPTION
  dsp.go defines the pluggable DSP contract that the ProRes slice decoder
  drives: block clearing, dequantize+IDCT+store, and the coefficient
  permutation used to pre-order quant/scan tables for the kernel's native
  layout.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package dsp defines the IDCT/block-clear contract used by the ProRes
// slice decoder, and provides a default pure-Go kernel implementing it.
// Per the core's scope, the kernel's internal math is an external
// collaborator contract: callers may substitute a SIMD or hardware-backed
// Kernel without touching the bitstream/entropy layers.
package dsp

// Kernel is the DSP primitive set the ProRes slice decoder is written
// against. dst starts at the block's top-left sample and each following
// row lies strideBytes further on, so strides are non-negative; negative
// strides are not supported. An implementation must touch exactly the 64
// samples (8x8) of the block it's given.
type Kernel interface {
	// ClearBlock zeroes the 64 coefficients of block.
	ClearBlock(block *[64]int16)

	// IDCTPut dequantizes coeffs by elementwise multiplication with qmat,
	// performs the inverse DCT appropriate for bitDepth, clips to the
	// unsigned range of width bitDepth, and stores the 8x8 result as
	// 16-bit samples at dst, strided by strideBytes (in bytes, over a
	// uint16-addressed destination).
	IDCTPut(dst []byte, strideBytes int, coeffs *[64]int16, qmat *[64]int16, bitDepth int)

	// Permutation returns the coefficient reordering the kernel's IDCT
	// wants its input in, for the given bitDepth. Quant matrices and
	// scan tables are permuted through this once, at frame-header parse
	// time, so that the hot per-slice loop never re-permutes.
	Permutation(bitDepth int) [64]int
}

// Permute returns a copy of raw (64 zig-zag-order entries) reordered
// through perm, i.e. out[i] = raw[perm[i]] is NOT what's wanted here;
// ProRes permutes so that out[perm[i]] = raw[i] — the value that was at
// zig-zag position i ends up at the kernel's native position perm[i].
func Permute[T any](raw [64]T, perm [64]int) [64]T {
	var out [64]T
	for i, p := range perm {
		out[p] = raw[i]
	}
	return out
}
