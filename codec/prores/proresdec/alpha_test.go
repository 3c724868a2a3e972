package proresdec

import (
	"testing"

	"github.com/ausocean/prores/codec/prores/proresdec/bits"
)

func TestUpscaleAlpha(t *testing.T) {
	cases := []struct {
		a               uint32
		numBits, outBits int
		want            uint16
	}{
		{0xFFFF, 16, 10, 0xFFFF >> 6},
		{0xFF, 8, 10, (0xFF << 2) | (0xFF >> 6)},
		{0xFFFF, 16, 12, 0xFFFF >> 4},
		{0xFF, 8, 12, (0xFF << 4) | (0xFF >> 4)},
	}
	for _, c := range cases {
		if got := upscaleAlpha(c.a, c.numBits, c.outBits); got != c.want {
			t.Errorf("upscaleAlpha(%#x, %d, %d) = %d, want %d", c.a, c.numBits, c.outBits, got, c.want)
		}
	}
}

func TestUnpackAlphaAbsoluteSample(t *testing.T) {
	// flag=1 (absolute sample), val=200 (8 bits), then a mandatory 4-bit
	// run nibble=1 (clipped to 0 since idx already reached n=1).
	// alpha_val = (255 + 200) & 255 = 199.
	data := []byte{0xE4, 0x08}
	br := bits.NewReader(data, 16)
	dst := make([]uint16, 1)
	unpackAlpha(br, dst, 1, 8, 10)

	want := upscaleAlpha(199, 8, 10)
	if dst[0] != want {
		t.Errorf("dst[0] = %d, want %d", dst[0], want)
	}
}

func TestUnpackAlphaRunFill(t *testing.T) {
	// flag=0 (differential sample) with 4-bit raw 0 -> val computed as
	// (0+2)>>1=1, sign=0 -> val=1; alpha_val=(255+1)&255=0. The
	// continuation bit is 0 (stop after one sample), then a mandatory
	// run nibble=3 fills the remaining 3 samples with the same value.
	// bits: flag(1)=0, diff(4)=0000, continue(1)=0, run(4)=0011
	data := []byte{0x00, 0xC0}
	br := bits.NewReader(data, 10)
	dst := make([]uint16, 4)
	unpackAlpha(br, dst, 4, 8, 10)

	want := upscaleAlpha(0, 8, 10)
	for i, v := range dst {
		if v != want {
			t.Errorf("dst[%d] = %d, want %d", i, v, want)
		}
	}
}
