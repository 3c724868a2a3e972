package proresdec

import (
	"testing"

	"github.com/ausocean/prores/codec/prores/proresdec/bits"
)

func identityScan() *[64]int {
	var s [64]int
	for i := range s {
		s[i] = i
	}
	return &s
}

func TestDecodeACCoeffsSinglePair(t *testing.T) {
	// run codeword 0x04 decodes run=0 from a single "1" bit; level
	// codeword 0x05 likewise decodes level=0 (+1 => 1) from a single "1"
	// bit; the sign bit that follows is 0, so coeff = +1.
	data := []byte{0xC0} // 1 1 0 0 0 0 0 0
	br := bits.NewReader(data, 8)
	out := make([]int16, 64)
	if err := decodeACCoeffs(br, out, 1, identityScan()); err != nil {
		t.Fatalf("decodeACCoeffs: %v", err)
	}
	if out[1] != 1 {
		t.Errorf("out[1] = %d, want 1", out[1])
	}
	for i, v := range out {
		if i != 1 && v != 0 {
			t.Errorf("out[%d] = %d, want 0", i, v)
		}
	}
}

func TestDecodeACCoeffsRejectsOverlongCodeword(t *testing.T) {
	// A long run of leading zero bits drives the leading-zero count q
	// (and hence the exp-Golomb bit count) past the 31-bit limit a
	// codeword can represent; this must surface as ErrInvalidData
	// rather than an out-of-range shift.
	data := []byte{0x00, 0x00, 0x00, 0x01, 0xFF, 0xFF, 0xFF, 0xFF}
	br := bits.NewReader(data, 64)
	out := make([]int16, 64)
	if err := decodeACCoeffs(br, out, 1, identityScan()); err == nil {
		t.Fatal("expected an error for an overlong codeword, got nil")
	}
}
