/*
DESCRIPTION
  alpha.go decodes the run-length differential alpha plane, which is
  coded independently of the DCT pipeline used by luma/chroma.

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
	bitreader "github.com/ausocean/prores/codec/prores/proresdec/bits"
)

// unpackAlpha decodes n run-length differential alpha samples from br,
// each coded at numBits precision (8 or 16), upscaling to outBits (10 or
// 12) output precision, and writes them to dst.
func unpackAlpha(br *bitreader.Reader, dst []uint16, n int, numBits, outBits int) {
	mask := uint32(1)<<uint(numBits) - 1
	a := mask

	idx := 0
	for {
		for {
			var v uint32
			if br.ReadBits(1) == 1 {
				v = br.ReadBits(numBits)
			} else {
				var nBits int
				if numBits == 16 {
					nBits = 7
				} else {
					nBits = 4
				}
				u := br.ReadBits(nBits)
				sign := u & 1
				val := int32((u + 2) >> 1)
				if sign != 0 {
					val = -val
				}
				v = uint32(val)
			}
			a = (a + v) & mask

			dst[idx] = upscaleAlpha(a, numBits, outBits)
			idx++
			if idx >= n {
				break
			}
			if br.BitsLeft() <= 0 || br.ReadBits(1) == 0 {
				break
			}
		}

		// A run length follows every inner pass, even one that already
		// reached n — the encoder always emits it, so the decoder must
		// always consume it to stay aligned with the bitstream.
		run := int(br.ReadBits(4))
		if run == 0 {
			run = int(br.ReadBits(11))
		}
		if idx+run > n {
			run = n - idx
		}
		sample := upscaleAlpha(a, numBits, outBits)
		for i := 0; i < run; i++ {
			dst[idx] = sample
			idx++
		}

		if idx >= n {
			break
		}
	}
}

// upscaleAlpha expands an alpha sample coded at numBits precision to
// outBits (10 or 12) output precision.
func upscaleAlpha(a uint32, numBits, outBits int) uint16 {
	switch {
	case numBits == 16 && outBits == 10:
		return uint16(a >> 6)
	case numBits == 8 && outBits == 10:
		return uint16((a << 2) | (a >> 6))
	case numBits == 16 && outBits == 12:
		return uint16(a >> 4)
	default: // numBits == 8 && outBits == 12
		return uint16((a << 4) | (a >> 4))
	}
}
