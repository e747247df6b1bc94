// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

import "errors"

// Sentinel errors for the codecs and the search driver.
var (
	// ErrConfiguration is returned when a parameter is outside its legal range
	// (window_bits, length_bits, bit_width, or a non-positive size_bit_count/size_bits).
	ErrConfiguration = errors.New("illegal codec configuration")
	// ErrTruncated is returned when a bitstream ends mid-field or mid-token.
	ErrTruncated = errors.New("truncated bitstream")
	// ErrMalformed is returned when decoded parameters are out of range or a
	// back-reference offset points before the start of decoded output.
	ErrMalformed = errors.New("malformed compressed stream")
	// ErrOverflow is returned by ToBinary when the token count does not fit the
	// token-count header field (LZSS: count < 2^size_bit_count; RLE: count-1 is
	// stored, so count <= 2^size_bits).
	ErrOverflow = errors.New("token count overflow")
	// ErrNoViableCompression is returned by the search driver when every
	// candidate (window_bits, length_bits) pair failed to produce a result.
	ErrNoViableCompression = errors.New("no viable compression found")
	// ErrPoolClosed is returned by Pool.Start after KillAll has been called.
	ErrPoolClosed = errors.New("worker pool closed")
)
