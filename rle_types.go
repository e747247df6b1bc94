// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

// rleSentinelConstant is the module-level fixed sentinel value (spec.md §9:
// "make it a module-level constant and derive per-bit-width via masking"),
// ported from the original's process-wide `_rle_sentinel`.
const rleSentinelConstant uint64 = 0x08192A3B4C5D6E7F

// maskForWidth returns a mask with the low width bits set (width in 1..64).
func maskForWidth(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}

// rleSentinelForBitWidth returns the fixed sentinel truncated to bitWidth bits.
func rleSentinelForBitWidth(bitWidth int) uint64 {
	return rleSentinelConstant & maskForWidth(bitWidth)
}

// RLEToken is a tagged variant: a bare value, or a (Value, Count) run.
type RLEToken struct {
	IsRun bool
	Value uint64
	Count int // only meaningful when IsRun
}

// RLEParameters holds the tunables for one RLE codec instance.
//
// bit_width is capped at 64 in this implementation (the spec's nominal
// 1..128 upper bound assumes an arbitrary-precision integer per value;
// no directive in the buffer-directive front end this core serves emits
// single repeat units wider than a 64-bit register, so representing the
// 65..128 range would need a big-integer token type for no real caller —
// see DESIGN.md's Open Questions).
type RLEParameters struct {
	BitWidth        int
	UseSentinel     bool // bit_width % 4 == 0
	DynamicSentinel bool
	SizeBits        int
	MinimumLoop     int // 3 in sentinel mode, else 2
	ByteWidth       int // ceil(bit_width/8)
}

// NewRLEParameters validates bitWidth/sizeBits and derives the rest.
func NewRLEParameters(bitWidth int, dynamicSentinel bool, sizeBits int) (RLEParameters, error) {
	if bitWidth < 1 || bitWidth > 64 {
		return RLEParameters{}, ErrConfiguration
	}
	if sizeBits <= 0 {
		return RLEParameters{}, ErrConfiguration
	}

	useSentinel := bitWidth%4 == 0
	minimumLoop := 2
	if useSentinel {
		minimumLoop = 3
	}

	return RLEParameters{
		BitWidth:        bitWidth,
		UseSentinel:     useSentinel,
		DynamicSentinel: dynamicSentinel,
		SizeBits:        sizeBits,
		MinimumLoop:     minimumLoop,
		ByteWidth:       (bitWidth + 7) / 8,
	}, nil
}

// maxRunCount returns the corrected run-count bound from spec.md §9's Open
// Questions: 2^bit_width in sentinel mode (the count field is exactly
// bit_width bits wide, storing count-1), 2^(bit_width+1) in flag mode (the
// count field is bit_width+1 bits wide). Clamped to avoid overflow for
// wide bit widths; no realistic in-memory buffer has a run that long.
func (p RLEParameters) maxRunCount() int {
	bits := p.BitWidth
	if !p.UseSentinel {
		bits++
	}
	if bits >= 62 {
		return int(^uint(0) >> 1)
	}
	return 1 << uint(bits)
}
