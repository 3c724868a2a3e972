/*
DESCRIPTION
  tables.go holds the constant tables used by the ProRes entropy decoders:
  packed codebook bytes for DC/AC codeword selection, and the progressive
  and interlaced zig-zag scan orders.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package proresdec

// firstDCCodebook is the fixed codebook used to decode the first DC
// coefficient of a slice.
const firstDCCodebook = 0xB8

// dcCodebooks is indexed by min(prevMagnitude, 6) to pick the adaptive
// codebook for all but the first DC coefficient of a slice.
var dcCodebooks = [7]byte{0x04, 0x28, 0x28, 0x4D, 0x4D, 0x70, 0x70}

// runCodebooks is indexed by min(prevRun, 15) to pick the codebook for
// the next AC run value.
var runCodebooks = [16]byte{
	0x06, 0x06, 0x05, 0x05, 0x04, 0x29, 0x29, 0x29,
	0x29, 0x28, 0x28, 0x28, 0x28, 0x28, 0x28, 0x4C,
}

// levelCodebooks is indexed by min(prevLevel, 9) to pick the codebook
// for the next AC level value.
var levelCodebooks = [10]byte{
	0x04, 0x0A, 0x05, 0x06, 0x04, 0x28, 0x28, 0x28, 0x28, 0x4C,
}

// rawProgressiveScan and rawInterlacedScan are the zig-zag scan orders as
// they appear in the bitstream. Each time a frame header is parsed they're
// mapped through the dsp.Kernel's Permutation table into the kernel's
// native coefficient order, so that runtime coefficient placement needs no
// further reordering.
var rawProgressiveScan = [64]int{
	0, 1, 8, 9, 2, 3, 10, 11,
	16, 17, 24, 25, 18, 19, 26, 27,
	4, 5, 12, 20, 13, 6, 7, 14,
	21, 28, 29, 22, 15, 23, 30, 31,
	32, 33, 40, 48, 41, 34, 35, 42,
	49, 56, 57, 50, 43, 36, 37, 44,
	51, 58, 59, 52, 45, 38, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

var rawInterlacedScan = [64]int{
	0, 8, 1, 9, 16, 24, 17, 25,
	2, 10, 3, 11, 18, 26, 19, 27,
	32, 40, 33, 34, 41, 48, 56, 49,
	42, 35, 43, 50, 57, 58, 51, 59,
	4, 12, 5, 6, 13, 20, 28, 21,
	14, 7, 15, 22, 29, 36, 44, 37,
	30, 23, 31, 38, 45, 52, 60, 53,
	46, 39, 47, 54, 61, 62, 55, 63,
}

// defaultQuantMatrix is used for a quant slot omitted by the frame header
// (constant 4 in every position, per the wire format's convention).
var defaultQuantMatrix = func() [64]byte {
	var m [64]byte
	for i := range m {
		m[i] = 4
	}
	return m
}()
