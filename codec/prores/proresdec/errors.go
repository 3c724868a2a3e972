/*
DESCRIPTION
  errors.go defines the sentinel error kinds returned by the ProRes decoder.

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

import "errors"

// Sentinel error kinds. Callers should use errors.Is against these rather
// than comparing strings; internal call sites wrap them with fmt.Errorf's
// %w verb or github.com/pkg/errors.Wrap to attach positional context.
var (
	// ErrInvalidData indicates a structural bitstream violation: a bad
	// size field, an out-of-range field, a truncated header, an AC
	// position overflow, or a codeword requiring more than 31 bits.
	ErrInvalidData = errors.New("prores: invalid data")

	// ErrNotImplemented indicates a frame header version greater than 1.
	ErrNotImplemented = errors.New("prores: not implemented")

	// ErrOutOfMemory indicates the slice table could not be (re)allocated.
	ErrOutOfMemory = errors.New("prores: out of memory")

	// ErrNoMemoryOrConfig indicates a picture header derived zero slices.
	ErrNoMemoryOrConfig = errors.New("prores: no memory or config")
)
