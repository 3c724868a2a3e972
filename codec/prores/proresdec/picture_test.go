package proresdec

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParsePictureHeaderSingleSlice(t *testing.T) {
	d := NewDecoder()
	d.width, d.height = 16, 16
	d.frameType = FrameProgressive

	buf := make([]byte, 16)
	buf[0] = 8 << 3 // hdr_size = 8
	binary.BigEndian.PutUint32(buf[1:5], 16)
	buf[7] = 0 // log2_slice_mb_width=0, log2_slice_mb_height=0
	binary.BigEndian.PutUint16(buf[8:10], 6)
	// 6 bytes of slice data follow the 2-byte index.
	copy(buf[10:16], []byte{0, 0, 0, 0, 0, 0})

	picSize, err := d.parsePictureHeader(buf)
	if err != nil {
		t.Fatalf("parsePictureHeader: %v", err)
	}
	if picSize != 16 {
		t.Errorf("picSize = %d, want 16", picSize)
	}
	want := []sliceDescriptor{{mbX: 0, mbY: 0, mbCount: 1}}
	if diff := cmp.Diff(want, d.slices, cmp.AllowUnexported(sliceDescriptor{}), cmpopts.IgnoreFields(sliceDescriptor{}, "data")); diff != "" {
		t.Errorf("slice table mismatch (-want +got):\n%s", diff)
	}
	if len(d.slices[0].data) != 6 {
		t.Errorf("slice data len = %d, want 6", len(d.slices[0].data))
	}
}

func TestParsePictureHeaderZeroDimensionsIsNoMemoryOrConfig(t *testing.T) {
	d := NewDecoder()
	d.width, d.height = 0, 0
	d.frameType = FrameProgressive

	buf := make([]byte, 8)
	buf[0] = 8 << 3
	binary.BigEndian.PutUint32(buf[1:5], 8)

	_, err := d.parsePictureHeader(buf)
	if !errors.Is(err, ErrNoMemoryOrConfig) {
		t.Errorf("err = %v, want ErrNoMemoryOrConfig", err)
	}
}

func TestParsePictureHeaderRejectsBadSliceResolution(t *testing.T) {
	d := NewDecoder()
	d.width, d.height = 16, 16
	d.frameType = FrameProgressive

	buf := make([]byte, 8)
	buf[0] = 8 << 3
	binary.BigEndian.PutUint32(buf[1:5], 8)
	buf[7] = 1 // log2_slice_mb_height=1, unsupported

	if _, err := d.parsePictureHeader(buf); !errors.Is(err, ErrInvalidData) {
		t.Errorf("err = %v, want ErrInvalidData", err)
	}
}
