/*
DESCRIPTION
  slice.go decodes one slice: header, luma/chroma/alpha plane entropy
  decode, dequantize+IDCT, and placement into the destination frame.

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

	"github.com/ausocean/prores/codec/prores/proresdec/bits"
)

// decodeSlice decodes the slice at d.slices[idx] into d.target, using
// d's current per-frame state (quant matrices, scan table, sampling,
// alpha mode, field parity). It's safe to call concurrently across idx
// for a fixed Decoder, since it only reads shared per-frame state and
// writes disjoint regions of d.target. threadIndex is unused by the
// default kernel but is part of the Executor contract.
func (d *Decoder) decodeSlice(idx, threadIndex int) error {
	sl := d.slices[idx]
	buf := sl.data
	if len(buf) < 6 {
		return fmt.Errorf("%w: slice data too small", ErrInvalidData)
	}

	hdrSize := int(buf[0] >> 3)
	qscale := int(buf[1])
	if qscale < 1 {
		qscale = 1
	} else if qscale > 224 {
		qscale = 224
	}
	if qscale > 128 {
		qscale = (qscale - 96) << 2
	}

	ySize := int(binary.BigEndian.Uint16(buf[2:4]))
	uSize := int(binary.BigEndian.Uint16(buf[4:6]))
	var vSize int
	if hdrSize > 7 {
		if len(buf) < 8 {
			return fmt.Errorf("%w: slice header truncated", ErrInvalidData)
		}
		vSize = int(binary.BigEndian.Uint16(buf[6:8]))
	} else {
		vSize = len(buf) - ySize - uSize - hdrSize
	}
	aSize := len(buf) - ySize - uSize - vSize - hdrSize

	if ySize < 0 || uSize < 0 || vSize < 0 || hdrSize+ySize+uSize+vSize > len(buf) {
		return fmt.Errorf("%w: invalid plane data size", ErrInvalidData)
	}
	buf = buf[hdrSize:]

	var qmatLuma, qmatChroma [64]int16
	for i := range qmatLuma {
		qmatLuma[i] = int16(int32(d.qmatLuma[i]) * int32(qscale))
		qmatChroma[i] = int16(int32(d.qmatChroma[i]) * int32(qscale))
	}

	lumaStride := d.target.Linesize[0]
	chromaStride := d.target.Linesize[1]
	interlaced := d.frameType != FrameProgressive
	if interlaced {
		lumaStride <<= 1
		chromaStride <<= 1
	}

	mbXShift, log2ChromaBlocksPerMB := 4, 1
	if d.sampling == Chroma444 {
		mbXShift, log2ChromaBlocksPerMB = 5, 2
	}

	offset := (sl.mbY << 4) * lumaStride + (sl.mbX << 5)
	destY := d.target.Data[0][offset:]
	destU := d.target.Data[1][(sl.mbY<<4)*chromaStride+(sl.mbX<<mbXShift):]
	destV := d.target.Data[2][(sl.mbY<<4)*chromaStride+(sl.mbX<<mbXShift):]

	if interlaced {
		topFieldFirst := d.frameType == FrameInterlacedTopFirst
		if (d.fieldIdx == 0) != topFieldFirst {
			destY = destY[d.target.Linesize[0]:]
			destU = destU[d.target.Linesize[1]:]
			destV = destV[d.target.Linesize[2]:]
			offset += d.target.Linesize[3]
		}
	}

	if err := d.decodeSliceLuma(destY, lumaStride, buf[:ySize], sl.mbCount, &qmatLuma); err != nil {
		return fmt.Errorf("slice %d luma: %w", idx, err)
	}
	buf = buf[ySize:]

	if !d.grayscale {
		if err := d.decodeSliceChroma(destU, chromaStride, buf[:uSize], sl.mbCount, &qmatChroma, log2ChromaBlocksPerMB); err != nil {
			return fmt.Errorf("slice %d chroma u: %w", idx, err)
		}
		buf = buf[uSize:]
		if err := d.decodeSliceChroma(destV, chromaStride, buf[:vSize], sl.mbCount, &qmatChroma, log2ChromaBlocksPerMB); err != nil {
			return fmt.Errorf("slice %d chroma v: %w", idx, err)
		}
		buf = buf[vSize:]
	} else {
		buf = buf[uSize+vSize:]
	}

	if d.alpha != AlphaNone && len(d.target.Data[3]) > 0 && aSize > 0 {
		destA := d.target.Data[3][offset:]
		d.decodeSliceAlpha(destA, lumaStride, buf[:aSize], sl.mbCount)
	}

	return nil
}

// decodeSliceLuma decodes and places the 4 luma blocks of each of the
// slice's macroblocks (a 2x2 grid of 8x8 blocks per 16x16 macroblock).
func (d *Decoder) decodeSliceLuma(dst []byte, stride int, buf []byte, mbCount int, qmat *[64]int16) error {
	blocksPerSlice := mbCount << 2
	var scratch [8 * 4 * 64]int16
	blocks := scratch[:blocksPerSlice*64]

	br := bits.NewReader(buf, len(buf)*8)
	if err := decodeDCCoeffs(br, blocks, blocksPerSlice); err != nil {
		return err
	}
	if err := decodeACCoeffs(br, blocks, blocksPerSlice, d.scan); err != nil {
		return err
	}

	for i := 0; i < mbCount; i++ {
		block := blocks[i*4*64:]
		d.kernel.IDCTPut(dst[i*32:], stride, (*[64]int16)(block[0*64:1*64]), qmat, d.bitDepth)
		d.kernel.IDCTPut(dst[i*32+16:], stride, (*[64]int16)(block[1*64:2*64]), qmat, d.bitDepth)
		d.kernel.IDCTPut(dst[i*32+8*stride:], stride, (*[64]int16)(block[2*64:3*64]), qmat, d.bitDepth)
		d.kernel.IDCTPut(dst[i*32+8*stride+16:], stride, (*[64]int16)(block[3*64:4*64]), qmat, d.bitDepth)
	}
	return nil
}

// decodeSliceChroma decodes and places a chroma plane's blocks. log2BlocksPerMB
// is 1 for 4:2:2 (one 8x16 column per mb) or 2 for 4:4:4 (two columns).
func (d *Decoder) decodeSliceChroma(dst []byte, stride int, buf []byte, mbCount int, qmat *[64]int16, log2BlocksPerMB int) error {
	blocksPerSlice := mbCount << uint(log2BlocksPerMB)
	var scratch [8 * 4 * 64]int16
	blocks := scratch[:blocksPerSlice*64]

	if len(buf) > 0 {
		// Some encodes emit an empty chroma scan to simulate grayscale;
		// blocks stays all-zero (DC/AC both absent) in that case.
		br := bits.NewReader(buf, len(buf)*8)
		if err := decodeDCCoeffs(br, blocks, blocksPerSlice); err != nil {
			return err
		}
		if err := decodeACCoeffs(br, blocks, blocksPerSlice, d.scan); err != nil {
			return err
		}
	}

	pos := 0
	for i := 0; i < mbCount; i++ {
		for j := 0; j < log2BlocksPerMB; j++ {
			block := blocks[pos*64:]
			d.kernel.IDCTPut(dst, stride, (*[64]int16)(block[0*64:1*64]), qmat, d.bitDepth)
			d.kernel.IDCTPut(dst[8*stride:], stride, (*[64]int16)(block[1*64:2*64]), qmat, d.bitDepth)
			dst = dst[16:]
			pos += 2
		}
	}
	return nil
}

// decodeSliceAlpha decodes the slice's run-length differential alpha
// plane and copies it into the destination, 16 samples wide per
// macroblock column, 16 rows tall.
func (d *Decoder) decodeSliceAlpha(dst []byte, stride int, buf []byte, mbCount int) {
	n := mbCount * 4 * 64
	samples := make([]uint16, n)

	numBits := 8
	if d.alpha == Alpha16Bit {
		numBits = 16
	}
	br := bits.NewReader(buf, len(buf)*8)
	unpackAlpha(br, samples, n, numBits, d.bitDepth)

	rowSamples := 16 * mbCount
	for y := 0; y < 16; y++ {
		row := dst[y*stride:]
		src := samples[y*rowSamples : (y+1)*rowSamples]
		for x, v := range src {
			row[2*x] = byte(v)
			row[2*x+1] = byte(v >> 8)
		}
	}
}
