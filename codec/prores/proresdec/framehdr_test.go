package proresdec

import "testing"

func minimalFrameHeader(tag string, width, height uint16, frameTypeAndChroma byte, alphaInfo byte) []byte {
	buf := make([]byte, 20)
	buf[0], buf[1] = 0, 20 // hdr_size
	buf[2], buf[3] = 0, 0  // version
	copy(buf[4:8], tag)
	buf[8], buf[9] = byte(width>>8), byte(width)
	buf[10], buf[11] = byte(height>>8), byte(height)
	buf[12] = frameTypeAndChroma
	buf[14] = 1 // primaries
	buf[15] = 1 // transfer
	buf[16] = 6 // matrix
	buf[17] = alphaInfo
	buf[19] = 0 // flags: no custom quant matrices
	return buf
}

func TestParseFrameHeaderProgressive422(t *testing.T) {
	d := NewDecoder()
	buf := minimalFrameHeader("apcn", 64, 64, 0x00, 0)

	n, err := d.parseFrameHeader(buf)
	if err != nil {
		t.Fatalf("parseFrameHeader: %v", err)
	}
	if n != 20 {
		t.Errorf("consumed %d bytes, want 20", n)
	}
	if d.profile != ProfileStandard {
		t.Errorf("profile = %v, want ProfileStandard", d.profile)
	}
	if d.bitDepth != 10 {
		t.Errorf("bitDepth = %d, want 10", d.bitDepth)
	}
	if d.width != 64 || d.height != 64 {
		t.Errorf("dims = %dx%d, want 64x64", d.width, d.height)
	}
	if d.frameType != FrameProgressive {
		t.Errorf("frameType = %v, want FrameProgressive", d.frameType)
	}
	if d.sampling != Chroma422 {
		t.Errorf("sampling = %v, want Chroma422", d.sampling)
	}
	if d.alpha != AlphaNone {
		t.Errorf("alpha = %v, want AlphaNone", d.alpha)
	}
	for i, v := range d.qmatLuma {
		if v != 4 {
			t.Fatalf("qmatLuma[%d] = %d, want 4 (default matrix)", i, v)
		}
	}
	for i, v := range d.qmatChroma {
		if v != 4 {
			t.Fatalf("qmatChroma[%d] = %d, want 4 (default matrix)", i, v)
		}
	}
}

func TestParseFrameHeader444(t *testing.T) {
	d := NewDecoder()
	buf := minimalFrameHeader("ap4h", 64, 64, 0xC0, 0)

	if _, err := d.parseFrameHeader(buf); err != nil {
		t.Fatalf("parseFrameHeader: %v", err)
	}
	if d.profile != Profile4444 {
		t.Errorf("profile = %v, want Profile4444", d.profile)
	}
	if d.bitDepth != 12 {
		t.Errorf("bitDepth = %d, want 12", d.bitDepth)
	}
	if d.sampling != Chroma444 {
		t.Errorf("sampling = %v, want Chroma444", d.sampling)
	}
}

func TestParseFrameHeaderRejectsBadAlphaMode(t *testing.T) {
	d := NewDecoder()
	buf := minimalFrameHeader("apcn", 64, 64, 0x00, 3)

	if _, err := d.parseFrameHeader(buf); err == nil {
		t.Fatal("expected an error for alpha mode 3, got nil")
	}
}

func TestParseFrameHeaderSkipAlphaOverridesBitstream(t *testing.T) {
	d := NewDecoder(SkipAlpha())
	buf := minimalFrameHeader("apcn", 64, 64, 0x00, 1)

	if _, err := d.parseFrameHeader(buf); err != nil {
		t.Fatalf("parseFrameHeader: %v", err)
	}
	if d.alpha != AlphaNone {
		t.Errorf("alpha = %v, want AlphaNone when SkipAlpha is set", d.alpha)
	}
}

func TestParseFrameHeaderRejectsFutureVersion(t *testing.T) {
	d := NewDecoder()
	buf := minimalFrameHeader("apcn", 64, 64, 0x00, 0)
	buf[3] = 2 // version 2

	_, err := d.parseFrameHeader(buf)
	if err == nil {
		t.Fatal("expected an error for bitstream version 2, got nil")
	}
}

func TestParseFrameHeaderRejectsTruncatedHeader(t *testing.T) {
	d := NewDecoder()
	buf := minimalFrameHeader("apcn", 64, 64, 0x00, 0)[:10]

	if _, err := d.parseFrameHeader(buf); err == nil {
		t.Fatal("expected an error for a truncated header, got nil")
	}
}
