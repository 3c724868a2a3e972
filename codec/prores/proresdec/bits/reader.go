/*
DESCRIPTION
  reader.go provides an MSB-first bit reader over a byte slice, with a
  32-bit cache suited to the Rice/exp-Golomb hybrid codewords used by the
  ProRes entropy coder.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides an MSB-first bit reader backed by a byte slice,
// with an explicit 32-bit refill cache. Unlike the stream-oriented
// h264dec/bits.BitReader, this reader owns the whole input up front and
// exposes peek-without-consume over the cache, which is what the ProRes
// codeword decoder needs: it must look at up to 32 bits before deciding
// how many of them to actually consume.
package bits

// Reader reads bits MSB-first from a byte slice.
//
// cache holds up to 32 valid bits left-justified in the high bits of a
// uint32; nValid counts how many of those bits are loaded. Refill
// rebuilds the full 32-bit window, filling any bits past the end of the
// underlying slice with zeros.
type Reader struct {
	data    []byte
	bitLen  int // total number of bits in data.
	bitPos  int // bit offset of the next unread bit.
	cache   uint32
	nValid  uint // number of valid bits currently in cache, 0..32.
}

// NewReader returns a Reader over data, treating it as exactly bitLen
// bits (bitLen is usually len(data)*8, but callers may pass a smaller
// value to express a slice-size-derived bit budget precisely).
func NewReader(data []byte, bitLen int) *Reader {
	r := &Reader{data: data, bitLen: bitLen}
	r.refill()
	return r
}

// refill rebuilds the full 32-bit cache window from the true bit
// position, without advancing bitPos. It's idempotent: calling it again
// before any Skip has no effect.
//
// It's always rebuilt from scratch rather than topped up incrementally:
// after Skip(n) for an arbitrary n, nValid is generally not a multiple
// of 8, so the next bits to load don't start at a byte boundary within
// the cache's remaining room. Reading the 5 bytes that can possibly
// overlap a 32-bit window starting at any bit offset, then shifting the
// whole thing into place, avoids ever having to reason about a partial
// byte.
func (r *Reader) refill() {
	if r.nValid >= 32 {
		return
	}
	byteIdx := r.bitPos >> 3
	bitOff := uint(r.bitPos & 7)

	var v uint64
	for i := 0; i < 5; i++ {
		var b uint64
		if byteIdx+i < len(r.data) {
			b = uint64(r.data[byteIdx+i])
		}
		v |= b << uint(56-8*i)
	}
	v <<= bitOff

	r.cache = uint32(v >> 32)
	r.nValid = 32
}

// BitsLeft returns the number of unread bits remaining in the source.
func (r *Reader) BitsLeft() int {
	return r.bitLen - r.bitPos
}

// Peek returns the next n bits (1 <= n <= 25 without an intervening
// refill) as the low bits of the result, without advancing the reader.
func (r *Reader) Peek(n int) uint32 {
	if uint(n) > r.nValid {
		r.refill()
	}
	return r.cache >> (32 - uint(n))
}

// Peek32 returns the full 32-bit cache window after a refill, used by the
// codeword decoder to count leading zeros over the next 32 bits.
func (r *Reader) Peek32() uint32 {
	r.refill()
	return r.cache
}

// Skip advances the reader by n bits, 0 <= n <= 32.
func (r *Reader) Skip(n int) {
	r.bitPos += n
	if uint(n) >= r.nValid {
		r.cache = 0
		r.nValid = 0
	} else {
		r.cache <<= uint(n)
		r.nValid -= uint(n)
	}
}

// ReadBits reads and consumes the next n unsigned bits.
func (r *Reader) ReadBits(n int) uint32 {
	v := r.Peek(n)
	r.Skip(n)
	return v
}

// ReadSigned reads and consumes the next n bits as a sign-extended two's
// complement value ("show signed N bits" in the bit-reader contract).
func (r *Reader) ReadSigned(n int) int32 {
	v := r.ReadBits(n)
	shift := uint(32 - n)
	return int32(v<<shift) >> shift
}

// BytePos returns the byte offset of the next unread bit, rounded down.
func (r *Reader) BytePos() int {
	return r.bitPos >> 3
}
