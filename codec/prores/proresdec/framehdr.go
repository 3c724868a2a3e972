/*
DESCRIPTION
  framehdr.go parses the ProRes frame header: dimensions, profile,
  sampling, alpha mode, and quantization matrices.

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

	"github.com/ausocean/utils/logging"
)

// parseFrameHeader parses the frame header beginning at buf[0] and
// updates d's per-frame state (profile, bit depth, sampling, alpha mode,
// frame type, quant matrices, scan table). It returns the number of
// bytes consumed (hdr_size) so the caller can advance to the first
// picture payload.
func (d *Decoder) parseFrameHeader(buf []byte) (int, error) {
	if len(buf) < 20 {
		return 0, fmt.Errorf("%w: frame header truncated", ErrInvalidData)
	}

	hdrSize := int(binary.BigEndian.Uint16(buf[0:2]))
	if hdrSize > len(buf) {
		return 0, fmt.Errorf("%w: header size %d exceeds data size %d", ErrInvalidData, hdrSize, len(buf))
	}

	version := int(binary.BigEndian.Uint16(buf[2:4]))
	if version > 1 {
		return 0, fmt.Errorf("%w: bitstream version %d", ErrNotImplemented, version)
	}

	var tag [4]byte
	copy(tag[:], buf[4:8])
	profile := profileFromTag(tag)
	if profile == ProfileUnknown && d.Logger != nil {
		d.Logger.Log(logging.Warning, "prores: unknown profile tag", "tag", string(tag[:]))
	}
	d.profile = profile
	d.bitDepth = profile.bitDepth()

	// The permutation and its dependent scan tables are recomputed per
	// frame (not cached at decoder construction) since the kernel may
	// choose a different native layout per bit depth. Each scan entry is a
	// natural coefficient position, mapped to the kernel's native position.
	d.permutation = d.kernel.Permutation(d.bitDepth)
	for i := range d.progressiveScan {
		d.progressiveScan[i] = d.permutation[rawProgressiveScan[i]]
		d.interlacedScan[i] = d.permutation[rawInterlacedScan[i]]
	}

	d.width = int(binary.BigEndian.Uint16(buf[8:10]))
	d.height = int(binary.BigEndian.Uint16(buf[10:12]))

	d.frameType = FrameType((buf[12] >> 2) & 3)

	alphaInfo := int(buf[17] & 0xF)
	if alphaInfo > 2 {
		return 0, fmt.Errorf("%w: alpha mode %d", ErrInvalidData, alphaInfo)
	}
	if d.skipAlpha {
		alphaInfo = 0
	}
	d.alpha = AlphaMode(alphaInfo)

	if buf[12]&0xC0 == 0xC0 {
		d.sampling = Chroma444
	} else {
		d.sampling = Chroma422
	}

	d.primaries = buf[14]
	d.transfer = buf[15]
	d.matrix = buf[16]

	if d.frameType == FrameProgressive {
		d.scan = &d.progressiveScan
	} else {
		d.scan = &d.interlacedScan
	}

	flags := buf[19]
	ptr := buf[20:]

	var rawLuma, rawChroma [64]byte
	if flags&2 != 0 {
		if len(ptr) < 64 {
			return 0, fmt.Errorf("%w: luma quant matrix truncated", ErrInvalidData)
		}
		copy(rawLuma[:], ptr[:64])
		ptr = ptr[64:]
	} else {
		rawLuma = defaultQuantMatrix
	}
	d.qmatLuma = permuteQuantMatrix(rawLuma, d.permutation)

	if flags&1 != 0 {
		if len(ptr) < 64 {
			return 0, fmt.Errorf("%w: chroma quant matrix truncated", ErrInvalidData)
		}
		copy(rawChroma[:], ptr[:64])
	} else {
		rawChroma = rawLuma
	}
	d.qmatChroma = permuteQuantMatrix(rawChroma, d.permutation)

	return hdrSize, nil
}

// permuteQuantMatrix reorders a zig-zag-order quant matrix into the
// kernel's native coefficient order, so runtime use requires no further
// permutation.
func permuteQuantMatrix(raw [64]byte, perm [64]int) [64]int16 {
	var out [64]int16
	for i, p := range perm {
		out[p] = int16(raw[i])
	}
	return out
}
