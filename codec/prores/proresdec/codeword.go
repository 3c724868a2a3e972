/*
DESCRIPTION
  codeword.go implements the Rice/exponential-Golomb hybrid codeword
  decoder that underlies the DC and AC (run/level) entropy decoders.

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
	stdbits "math/bits"

	"github.com/ausocean/prores/codec/prores/proresdec/bits"
)

// decodeCodeword decodes one value from br using the packed codebook byte
// cb, following the Rice/exp-Golomb switch described in the bitstream
// format: rice_order = cb>>5, exp_order = (cb>>2)&7, switch_bits = cb&3.
func decodeCodeword(br *bits.Reader, cb byte) (uint32, error) {
	riceOrder := uint(cb >> 5)
	expOrder := uint(cb>>2) & 7
	switchBits := uint(cb & 3)

	window := br.Peek32()
	q := uint(stdbits.LeadingZeros32(window))
	if q > 31 {
		q = 31
	}

	switch {
	case q > switchBits:
		n := expOrder - switchBits + 2*q
		if n > 31 {
			return 0, fmt.Errorf("%w: codeword requires %d bits", ErrInvalidData, n)
		}
		val := br.Peek(int(n)) - (1 << expOrder) + ((switchBits + 1) << riceOrder)
		br.Skip(int(n))
		return val, nil
	case riceOrder > 0:
		br.Skip(int(q + 1))
		r := br.ReadBits(int(riceOrder))
		return uint32(q)<<riceOrder | r, nil
	default:
		br.Skip(int(q + 1))
		return uint32(q), nil
	}
}

// zigZagSigned converts an unsigned magnitude to a signed value using
// the standard zig-zag mapping: 0->0, 1->-1, 2->1, 3->-2, ...
func zigZagSigned(x uint32) int32 {
	return int32((x >> 1)) ^ -int32(x&1)
}
