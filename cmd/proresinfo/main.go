/*
DESCRIPTION
  proresinfo is a command line tool that decodes a raw ProRes
  elementary stream (one or more concatenated "icpf" frame units) and
  reports per-frame structure: dimensions, profile, sampling, and
  whether any slice failed to decode.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements proresinfo.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ausocean/prores/codec/prores/proresdec"
	"github.com/ausocean/utils/logging"
)

const pkg = "proresinfo: "

// Logging configuration.
const (
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	verbose := flag.Bool("v", false, "log slice decode warnings")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, pkg+"usage: proresinfo [-v] <file.prores>")
		os.Exit(2)
	}

	level := int8(logging.Error)
	if *verbose {
		level = logging.Info
	}
	l := logging.New(level, os.Stderr, logSuppress)

	if err := run(flag.Arg(0), l); err != nil {
		l.Log(logging.Fatal, pkg+"run failed", "error", err.Error())
	}
}

func run(path string, l logging.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	dec := proresdec.NewDecoder(proresdec.WithLogger(l))

	n := 0
	for off := 0; off+8 <= len(data); {
		size := int(binary.BigEndian.Uint32(data[off : off+4]))
		if size < 8 || off+size > len(data) {
			return fmt.Errorf("frame %d: bad frame size %d at offset %d", n, size, off)
		}
		unit := data[off : off+size]

		w, h, profile, sampling, alpha, frameType, err := dec.ParseDimensions(unit)
		if err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}

		frame := allocFrame(w, h, profile, sampling, alpha, frameType)
		if err := dec.Decode(unit, frame); err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}

		fmt.Printf("frame %d: %dx%d profile=%s sampling=%v alpha=%v damaged=%v\n",
			n, w, h, profile, sampling, alpha, frame.Damaged)

		n++
		off += size
	}

	fmt.Printf("%d frames\n", n)
	return nil
}

// allocFrame sizes a Frame's planes for width x height in the planar
// 16-bit-per-sample layout proresdec.Decoder.Decode expects; the sizes are
// the same for 10- and 12-bit profiles, so profile does not affect them.
func allocFrame(width, height int, profile proresdec.Profile, sampling proresdec.ChromaSampling, alpha proresdec.AlphaMode, frameType proresdec.FrameType) *proresdec.Frame {
	mbWidth := (width + 15) / 16
	mbHeightFactor := 16
	if frameType != proresdec.FrameProgressive {
		mbHeightFactor = 32
	}
	mbHeight := (height + mbHeightFactor - 1) / mbHeightFactor
	allocHeight := mbHeight * mbHeightFactor

	lumaStride := mbWidth * 16 * 2
	chromaWidth := mbWidth * 8
	if sampling == proresdec.Chroma444 {
		chromaWidth = mbWidth * 16
	}
	chromaStride := chromaWidth * 2

	f := &proresdec.Frame{
		Width:    width,
		Height:   height,
		Sampling: sampling,
		Alpha:    alpha,
	}
	f.Linesize = [4]int{lumaStride, chromaStride, chromaStride, lumaStride}
	f.Data[0] = make([]byte, lumaStride*allocHeight)
	f.Data[1] = make([]byte, chromaStride*allocHeight)
	f.Data[2] = make([]byte, chromaStride*allocHeight)
	if alpha != proresdec.AlphaNone {
		f.Data[3] = make([]byte, lumaStride*allocHeight)
	}
	return f
}
