/*
DESCRIPTION
  frame.go defines the caller-owned output surface and the profile/pixel
  format identifiers returned to the host.

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

// Profile identifies one of the six ProRes encoding profiles.
type Profile int

const (
	ProfileUnknown Profile = iota
	ProfileProxy
	ProfileLT
	ProfileStandard
	ProfileHQ
	Profile4444
	ProfileXQ
)

func (p Profile) String() string {
	switch p {
	case ProfileProxy:
		return "Proxy"
	case ProfileLT:
		return "LT"
	case ProfileStandard:
		return "Standard"
	case ProfileHQ:
		return "HQ"
	case Profile4444:
		return "4444"
	case ProfileXQ:
		return "XQ"
	default:
		return "Unknown"
	}
}

// bitDepth returns the raw sample depth (10 or 12) associated with the
// profile. Unknown profiles default to 10-bit, matching the wire format's
// "unknown tags warn but continue" handling.
func (p Profile) bitDepth() int {
	if p == Profile4444 || p == ProfileXQ {
		return 12
	}
	return 10
}

// AlphaMode describes whether and how the alpha plane is coded.
type AlphaMode int

const (
	AlphaNone AlphaMode = iota
	Alpha8Bit
	Alpha16Bit
)

// ChromaSampling describes the chroma subsampling of a frame.
type ChromaSampling int

const (
	Chroma422 ChromaSampling = iota
	Chroma444
)

// FrameType describes the field structure of a frame.
type FrameType int

const (
	FrameProgressive FrameType = iota
	FrameInterlacedTopFirst
	FrameInterlacedBottomFirst
)

// Frame is the caller-owned planar output surface. Data[0..3] are
// Y/U/V/A, each laid out as 16-bit-per-sample little-endian values of
// width 10 or 12, strided by Linesize (bytes).
type Frame struct {
	Data     [4][]byte
	Linesize [4]int

	Width, Height int
	Profile       Profile
	BitDepth      int
	Sampling      ChromaSampling
	Alpha         AlphaMode
	Type          FrameType

	// Primaries, Transfer and Matrix carry through the colour metadata
	// bytes from the frame header; range is always limited (MPEG).
	Primaries, Transfer, Matrix byte

	// Damaged is set if any slice in the frame failed to decode; the
	// planes of a failed slice that were not decoded retain whatever the
	// caller's buffer held before decode (partial-frame display policy).
	Damaged bool
}

func profileFromTag(tag [4]byte) Profile {
	switch string(tag[:]) {
	case "apco":
		return ProfileProxy
	case "apcs":
		return ProfileLT
	case "apcn":
		return ProfileStandard
	case "apch":
		return ProfileHQ
	case "ap4h":
		return Profile4444
	case "ap4x":
		return ProfileXQ
	default:
		return ProfileUnknown
	}
}
