// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

// SearchOptions configures the LZSS parameter-search driver.
type SearchOptions struct {
	// MaxWindowBits bounds window_bits (sanitised down to the buffer's own
	// address width, see sanitizeBufferAddress).
	MaxWindowBits int
	// MaxLengthBits bounds length_bits. Zero means "use MaxWindowBits",
	// matching spec.md's max_length_bits=None default.
	MaxLengthBits int
	// Workers is the worker pool capacity (typical 6-8; must hold at 1).
	Workers int
	// WorseAllowed is the number of consecutive worsening steps tolerated
	// before a descent direction stops (default 0); a step whose size equals
	// the running lowest does not count as worsening.
	WorseAllowed int
	// UseMainProcess runs the job inline on the caller when exactly one pool
	// slot is free, avoiding a spawn for the last job of a batch.
	UseMainProcess bool
}

// DefaultSearchOptions returns options for an 8-worker search up to 16 bits
// in both dimensions, matching spec.md §6's defaults.
func DefaultSearchOptions() *SearchOptions {
	return &SearchOptions{
		MaxWindowBits:  16,
		MaxLengthBits:  0,
		Workers:        8,
		WorseAllowed:   0,
		UseMainProcess: true,
	}
}

// RLEOptions configures RLE encoding.
type RLEOptions struct {
	// BitWidth is the fixed bit width of each encoded value. Capped at 64
	// (NewRLEParameters rejects wider requests); see RLEParameters' doc
	// comment for why the nominal 1..128 range is narrowed here.
	BitWidth int
	// DynamicSentinel selects a per-input sentinel to minimise escape
	// overhead instead of the fixed constant (sentinel mode only).
	DynamicSentinel bool
	// SizeBits is the bit width of the token-count header field.
	SizeBits int
}

// DefaultRLEOptions returns options for dynamic-sentinel RLE with a 24-bit
// token-count header, matching spec.md §6's defaults.
func DefaultRLEOptions(bitWidth int) *RLEOptions {
	return &RLEOptions{
		BitWidth:        bitWidth,
		DynamicSentinel: true,
		SizeBits:        24,
	}
}
