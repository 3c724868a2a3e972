/*
DESCRIPTION
  ac.go decodes the per-slice AC coefficients as run/level pairs,
  interleaved across the blocks of the slice and placed through the
  permuted scan table.

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
	"math/bits"

	bitreader "github.com/ausocean/prores/codec/prores/proresdec/bits"
)

// decodeACCoeffs decodes run/level pairs from br into out (blocksPerSlice
// interleaved 64-entry blocks), using scan to place each coefficient at
// its descanned position within its block.
func decodeACCoeffs(br *bitreader.Reader, out []int16, blocksPerSlice int, scan *[64]int) error {
	run := 4
	level := 2

	log2Blocks := bits.Len(uint(blocksPerSlice)) - 1
	mask := blocksPerSlice - 1
	maxCoeffs := 64 * blocksPerSlice

	pos := mask
	for {
		left := br.BitsLeft()
		if left <= 0 {
			break
		}
		if left < 32 && br.Peek(left) == 0 {
			break
		}

		runIdx := run
		if runIdx > 15 {
			runIdx = 15
		}
		r, err := decodeCodeword(br, runCodebooks[runIdx])
		if err != nil {
			return fmt.Errorf("could not decode ac run codeword: %w", err)
		}
		run = int(r)
		pos += run + 1
		if pos >= maxCoeffs {
			return fmt.Errorf("%w: ac position %d exceeds max coeffs %d", ErrInvalidData, pos, maxCoeffs)
		}

		levIdx := level
		if levIdx > 9 {
			levIdx = 9
		}
		l, err := decodeCodeword(br, levelCodebooks[levIdx])
		if err != nil {
			return fmt.Errorf("could not decode ac level codeword: %w", err)
		}
		level = int(l) + 1

		sign := br.ReadSigned(1)
		coeff := (int32(level) ^ sign) - sign

		block := pos & mask
		coeffIdx := pos >> uint(log2Blocks)
		out[block*64+scan[coeffIdx]] = int16(coeff)
	}
	return nil
}
