/*
DESCRIPTION
  dc.go decodes the per-slice DC coefficients: a fixed codebook for the
  first block, then an adaptive codebook with running delta and sticky
  sign prediction for the rest.

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

import (
	"fmt"

	"github.com/ausocean/prores/codec/prores/proresdec/bits"
)

// decodeDCCoeffs decodes one DC value per block into out, which must hold
// at least blocksPerSlice*64 int16 entries; each DC lands in the first
// coefficient slot of its block, strided by 64.
func decodeDCCoeffs(br *bits.Reader, out []int16, blocksPerSlice int) error {
	code, err := decodeCodeword(br, firstDCCodebook)
	if err != nil {
		return fmt.Errorf("could not decode first dc codeword: %w", err)
	}
	prev := zigZagSigned(code)
	out[0] = int16(prev)

	prevMagnitude := 5
	sign := int32(0)
	for i := 1; i < blocksPerSlice; i++ {
		idx := prevMagnitude
		if idx > 6 {
			idx = 6
		}
		m, err := decodeCodeword(br, dcCodebooks[idx])
		if err != nil {
			return fmt.Errorf("could not decode dc codeword for block %d: %w", i, err)
		}

		if m != 0 {
			sign ^= -int32(m & 1)
		} else {
			sign = 0
		}
		prev += (int32(m+1)>>1)^sign - sign
		out[i*64] = int16(prev)
		prevMagnitude = int(m)
	}
	return nil
}
