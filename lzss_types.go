// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

// LZSSToken is a tagged variant: either a literal byte or a back-reference
// (Offset, Length). Offset is negative (bytes backwards from the current
// position), as in spec.md §3.
type LZSSToken struct {
	IsBackRef bool
	Literal   byte
	Offset    int // negative; only meaningful when IsBackRef
	Length    int // only meaningful when IsBackRef
}

// LZSSParameters holds the tunables for one LZSS codec instance.
// WindowBits in [3,16], LengthBits in [1,16]; MinimumBackreference and
// ReferenceSize are derived, not set directly.
type LZSSParameters struct {
	WindowBits            int
	LengthBits            int
	SizeBitCount          int // bits used for the token-count header, default 22
	MinimumBackreference  int // derived
	ReferenceSize         int // derived: 1 + WindowBits + LengthBits
}

// minimumBackreferenceFor derives the minimum profitable back-reference
// length from the reference's bit width: a back-reference is only worth
// emitting when it is at least as wide as the literals it replaces.
func minimumBackreferenceFor(referenceSize int) int {
	switch {
	case referenceSize < 9:
		return 1
	case referenceSize < 17:
		return 2
	case referenceSize < 25:
		return 3
	default:
		return 4
	}
}

// NewLZSSParameters validates windowBits/lengthBits and derives the rest.
func NewLZSSParameters(windowBits, lengthBits, sizeBitCount int) (LZSSParameters, error) {
	if windowBits < 3 || windowBits > 16 {
		return LZSSParameters{}, ErrConfiguration
	}
	if lengthBits < 1 || lengthBits > 16 {
		return LZSSParameters{}, ErrConfiguration
	}
	if sizeBitCount <= 0 {
		return LZSSParameters{}, ErrConfiguration
	}

	referenceSize := 1 + windowBits + lengthBits
	return LZSSParameters{
		WindowBits:           windowBits,
		LengthBits:           lengthBits,
		SizeBitCount:         sizeBitCount,
		MinimumBackreference: minimumBackreferenceFor(referenceSize),
		ReferenceSize:        referenceSize,
	}, nil
}

// sanitizeBufferAddress clamps addressBits to the bit width actually
// needed to index buffer, per spec.md §4.4.
func sanitizeBufferAddress(bufferLen, addressBits int) int {
	needed := bitWidthPerValue(bufferLen)
	if needed < addressBits {
		return needed
	}
	return addressBits
}
