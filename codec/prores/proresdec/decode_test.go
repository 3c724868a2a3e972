package proresdec

import (
	"errors"
	"testing"
)

func TestDecodeRejectsMissingMagic(t *testing.T) {
	d := NewDecoder()
	data := make([]byte, 28)
	copy(data[4:8], "nope")

	err := d.Decode(data, &Frame{})
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("err = %v, want ErrInvalidData", err)
	}
}

func TestDecodeRejectsShortData(t *testing.T) {
	d := NewDecoder()
	err := d.Decode([]byte{0, 0, 0, 0}, &Frame{})
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("err = %v, want ErrInvalidData", err)
	}
}

func TestParseDimensionsReportsFrameShape(t *testing.T) {
	d := NewDecoder()

	hdr := minimalFrameHeader("apch", 128, 96, 0x00, 2)
	data := make([]byte, 8+len(hdr))
	copy(data[4:8], "icpf")
	copy(data[8:], hdr)

	w, h, profile, sampling, alpha, frameType, err := d.ParseDimensions(data)
	if err != nil {
		t.Fatalf("ParseDimensions: %v", err)
	}
	if w != 128 || h != 96 {
		t.Errorf("dims = %dx%d, want 128x96", w, h)
	}
	if profile != ProfileHQ {
		t.Errorf("profile = %v, want ProfileHQ", profile)
	}
	if sampling != Chroma422 {
		t.Errorf("sampling = %v, want Chroma422", sampling)
	}
	if alpha != Alpha16Bit {
		t.Errorf("alpha = %v, want Alpha16Bit", alpha)
	}
	if frameType != FrameProgressive {
		t.Errorf("frameType = %v, want FrameProgressive", frameType)
	}
}

func TestDecodeRejectsUndersizedDestinationBuffer(t *testing.T) {
	d := NewDecoder()

	hdr := minimalFrameHeader("apcn", 64, 64, 0x00, 0)
	data := make([]byte, 8+len(hdr))
	copy(data[4:8], "icpf")
	copy(data[8:], hdr)

	dst := &Frame{} // no planes allocated at all
	err := d.Decode(data, dst)
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("err = %v, want ErrInvalidData", err)
	}
}
