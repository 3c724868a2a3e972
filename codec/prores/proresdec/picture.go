/*
DESCRIPTION
  picture.go parses the picture header and builds the slice table: each
  picture (a whole frame, or one field of an interlaced frame) is tiled
  into macroblock-aligned slices that are independently decodable.

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
	"encoding/binary"
	"fmt"
	"math/bits"
)

// sliceDescriptor locates one slice's data and its macroblock tile within
// the picture.
type sliceDescriptor struct {
	data             []byte
	mbX, mbY         int
	mbCount          int
}

// maxSliceCount bounds slice table allocation against a corrupt or
// adversarial slice count derived from a bogus macroblock width/height.
const maxSliceCount = 1 << 20

// parsePictureHeader parses the picture header at buf[0], derives the
// slice count and tiling from the frame's macroblock dimensions (the
// bitstream's own slice_count field is informational only and is never
// trusted), and populates d.slices. It returns the number of bytes
// occupied by the whole picture (header + slice index + slice data), so
// the caller can locate any following field.
func (d *Decoder) parsePictureHeader(buf []byte) (int, error) {
	if len(buf) < 8 {
		return 0, fmt.Errorf("%w: picture header truncated", ErrInvalidData)
	}

	hdrSize := int(buf[0] >> 3)
	if hdrSize < 8 || hdrSize > len(buf) {
		return 0, fmt.Errorf("%w: picture header size %d", ErrInvalidData, hdrSize)
	}

	picDataSize := int(binary.BigEndian.Uint32(buf[1:5]))
	if picDataSize > len(buf) {
		return 0, fmt.Errorf("%w: picture data size %d exceeds available %d", ErrInvalidData, picDataSize, len(buf))
	}

	log2SliceMBWidth := int(buf[7] >> 4)
	log2SliceMBHeight := int(buf[7] & 0xF)
	if log2SliceMBWidth > 3 || log2SliceMBHeight != 0 {
		return 0, fmt.Errorf("%w: unsupported slice resolution %dx%d", ErrInvalidData, 1<<log2SliceMBWidth, 1<<log2SliceMBHeight)
	}

	mbWidth := (d.width + 15) >> 4
	var mbHeight int
	if d.frameType != FrameProgressive {
		mbHeight = (d.height + 31) >> 5
	} else {
		mbHeight = (d.height + 15) >> 4
	}
	d.mbWidth, d.mbHeight = mbWidth, mbHeight

	tailMask := (1 << log2SliceMBWidth) - 1
	sliceCount := mbHeight * ((mbWidth >> log2SliceMBWidth) + bits.OnesCount(uint(mbWidth)&uint(tailMask)))
	if sliceCount <= 0 {
		return 0, ErrNoMemoryOrConfig
	}
	if sliceCount > maxSliceCount {
		return 0, fmt.Errorf("%w: slice count %d implausible", ErrOutOfMemory, sliceCount)
	}

	if hdrSize+sliceCount*2 > len(buf) {
		return 0, fmt.Errorf("%w: wrong slice count", ErrInvalidData)
	}

	slices := d.slices
	if len(slices) != sliceCount {
		slices = make([]sliceDescriptor, sliceCount)
	}
	if slices == nil {
		return 0, ErrOutOfMemory
	}

	indexPtr := buf[hdrSize:]
	dataOff := hdrSize + sliceCount*2

	sliceMBCount := 1 << log2SliceMBWidth
	mbX, mbY := 0, 0

	for i := 0; i < sliceCount; i++ {
		size := int(binary.BigEndian.Uint16(indexPtr[i*2 : i*2+2]))
		if dataOff+size > len(buf) {
			return 0, fmt.Errorf("%w: slice out of bounds", ErrInvalidData)
		}

		for mbWidth-mbX < sliceMBCount {
			sliceMBCount >>= 1
		}

		slices[i] = sliceDescriptor{
			data:    buf[dataOff : dataOff+size],
			mbX:     mbX,
			mbY:     mbY,
			mbCount: sliceMBCount,
		}
		if len(slices[i].data) < 6 {
			return 0, fmt.Errorf("%w: wrong slice data size", ErrInvalidData)
		}

		dataOff += size
		mbX += sliceMBCount
		if mbX == mbWidth {
			sliceMBCount = 1 << log2SliceMBWidth
			mbX = 0
			mbY++
		}
	}

	if mbX != 0 || mbY != mbHeight {
		return 0, fmt.Errorf("%w: wrong mb count, got y=%d want h=%d", ErrInvalidData, mbY, mbHeight)
	}

	d.slices = slices
	return picDataSize, nil
}
