/*
DESCRIPTION
  decode.go is the ProRes frame decoder's public entry point: the
  Decoder type, its functional-option constructor, and the top-level
  frame/field driver that ties the header, picture and slice stages
  together.

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
	"fmt"

	"github.com/pkg/errors"

	"github.com/ausocean/prores/codec/prores/proresdec/dsp"
	"github.com/ausocean/utils/logging"
)

// Decoder decodes ProRes elementary-stream frames into caller-owned
// Frame buffers. A Decoder is not safe for concurrent use by multiple
// goroutines on the same frame, but its own slice decode is internally
// parallel (see Executor); a single Decoder must not have Decode called
// on it concurrently from two goroutines.
type Decoder struct {
	Logger logging.Logger

	kernel   dsp.Kernel
	executor Executor

	skipAlpha bool
	grayscale bool

	// Per-frame state, set by parseFrameHeader and read by the picture
	// and slice stages for the duration of one Decode call.
	profile   Profile
	bitDepth  int
	width     int
	height    int
	frameType FrameType
	alpha     AlphaMode
	sampling  ChromaSampling

	primaries, transfer, matrix byte

	permutation          [64]int
	progressiveScan      [64]int
	interlacedScan       [64]int
	scan                 *[64]int
	qmatLuma, qmatChroma [64]int16

	mbWidth, mbHeight int
	slices            []sliceDescriptor

	target   *Frame
	fieldIdx int
}

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// SkipAlpha disables alpha plane decoding even when the bitstream
// carries one; Frame.Alpha is reported as AlphaNone and Frame.Data[3]
// is left untouched.
func SkipAlpha() Option {
	return func(d *Decoder) { d.skipAlpha = true }
}

// Grayscale disables chroma plane decoding; Frame.Data[1] and
// Frame.Data[2] are left untouched.
func Grayscale() Option {
	return func(d *Decoder) { d.grayscale = true }
}

// WithExecutor overrides the default goroutine-pool slice dispatcher.
func WithExecutor(e Executor) Option {
	return func(d *Decoder) { d.executor = e }
}

// WithKernel overrides the default pure-Go IDCT kernel.
func WithKernel(k dsp.Kernel) Option {
	return func(d *Decoder) { d.kernel = k }
}

// WithLogger attaches a logger; without one, the Decoder is silent.
func WithLogger(l logging.Logger) Option {
	return func(d *Decoder) { d.Logger = l }
}

// NewDecoder returns a Decoder ready to decode frames.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		kernel:   dsp.Default{},
		executor: DefaultExecutor{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode parses one ProRes frame from data (an "icpf"-tagged elementary
// stream unit, as found inside a QuickTime/MOV sample or raw .mov
// payload) and decodes it into dst. dst's planes must already be sized
// for the frame's dimensions and bit depth; callers that don't yet know
// the dimensions should parse the frame header once (ParseDimensions)
// to size their buffers before calling Decode.
//
// If any slice fails to decode, Decode still returns nil and sets
// dst.Damaged; the planes of that slice that were not decoded keep
// whatever dst held before the call — matching the "best-effort partial frame" policy
// used throughout the format's deployed decoders. Decode only returns
// an error when every slice of a picture failed, or when a structural
// problem (bad header, truncated data) makes the frame undecodable at
// all.
func (d *Decoder) Decode(data []byte, dst *Frame) error {
	if len(data) < 28 || string(data[4:8]) != "icpf" {
		return fmt.Errorf("%w: missing icpf frame tag", ErrInvalidData)
	}
	buf := data[8:]

	frameHdrSize, err := d.parseFrameHeader(buf)
	if err != nil {
		return errors.Wrap(err, "frame header")
	}
	buf = buf[frameHdrSize:]

	dst.Width = d.width
	dst.Height = d.height
	dst.Profile = d.profile
	dst.BitDepth = d.bitDepth
	dst.Sampling = d.sampling
	dst.Alpha = d.alpha
	dst.Type = d.frameType
	dst.Primaries, dst.Transfer, dst.Matrix = d.primaries, d.transfer, d.matrix
	dst.Damaged = false

	if err := validateFrameBuffer(dst); err != nil {
		return err
	}

	d.target = dst
	d.fieldIdx = 0

	for {
		picSize, err := d.parsePictureHeader(buf)
		if err != nil {
			return errors.Wrap(err, "picture header")
		}

		errs := d.executor.Execute(len(d.slices), d.decodeSlice)

		failed := 0
		var firstErr error
		for _, e := range errs {
			if e != nil {
				failed++
				if firstErr == nil {
					firstErr = e
				}
			}
		}
		if failed > 0 {
			dst.Damaged = true
			if d.Logger != nil {
				d.Logger.Log(logging.Warning, "prores: slice decode errors", "failed", failed, "total", len(errs))
			}
		}
		if failed > 0 && failed == len(errs) {
			return errors.Wrapf(firstErr, "picture: all %d slices failed", failed)
		}

		buf = buf[picSize:]

		if d.frameType != FrameProgressive && len(buf) > 0 && d.fieldIdx == 0 {
			d.fieldIdx = 1
			continue
		}
		break
	}

	return nil
}

// ParseDimensions reads only the frame header of data (an "icpf"-tagged
// unit) and returns the frame's width, height, profile and chroma/alpha
// modes, without allocating or decoding any slice. Callers use this to
// size Frame buffers before the first Decode call.
func (d *Decoder) ParseDimensions(data []byte) (width, height int, profile Profile, sampling ChromaSampling, alpha AlphaMode, frameType FrameType, err error) {
	if len(data) < 28 || string(data[4:8]) != "icpf" {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("%w: missing icpf frame tag", ErrInvalidData)
	}
	if _, err := d.parseFrameHeader(data[8:]); err != nil {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("frame header: %w", err)
	}
	return d.width, d.height, d.profile, d.sampling, d.alpha, d.frameType, nil
}

// validateFrameBuffer checks that dst's planes and linesizes are large
// enough for the current frame's dimensions, so a malformed caller
// buffer fails fast with ErrInvalidData rather than panicking deep
// inside slice decode.
func validateFrameBuffer(dst *Frame) error {
	mbWidth := (dst.Width + 15) >> 4
	mbHeightFactor := 16
	if dst.Type != FrameProgressive {
		mbHeightFactor = 32
	}
	mbHeight := (dst.Height + mbHeightFactor - 1) / mbHeightFactor

	lumaRows := mbHeight * mbHeightFactor
	lumaCols := mbWidth * 16

	if dst.Linesize[0] < lumaCols*2 || len(dst.Data[0]) < dst.Linesize[0]*lumaRows {
		return fmt.Errorf("%w: destination luma plane too small", ErrInvalidData)
	}

	chromaCols := lumaCols / 2
	if dst.Sampling == Chroma444 {
		chromaCols = lumaCols
	}
	if dst.Linesize[1] < chromaCols*2 || len(dst.Data[1]) < dst.Linesize[1]*lumaRows {
		return fmt.Errorf("%w: destination chroma-u plane too small", ErrInvalidData)
	}
	if dst.Linesize[2] < chromaCols*2 || len(dst.Data[2]) < dst.Linesize[2]*lumaRows {
		return fmt.Errorf("%w: destination chroma-v plane too small", ErrInvalidData)
	}

	if dst.Alpha != AlphaNone && len(dst.Data[3]) > 0 {
		if dst.Linesize[3] < lumaCols*2 || len(dst.Data[3]) < dst.Linesize[3]*lumaRows {
			return fmt.Errorf("%w: destination alpha plane too small", ErrInvalidData)
		}
	}

	return nil
}
