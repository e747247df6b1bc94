// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

/*
Package buffercodec implements two small, self-describing byte-buffer
codecs — a parameterised LZSS variant and a sentinel-or-flag RLE — plus a
parameter-search driver that parallelises LZSS compressions across a
(window_bits, length_bits) grid and picks the smallest output.

# LZSS

LZSSCompress searches for the best (window_bits, length_bits) pair and
returns the packed bytes along with the chosen parameters:

	packed, windowBits, lengthBits, passes, err := buffercodec.LZSSCompress(data, 16, nil, 8)

LZSSCompressFixed skips the search and encodes with a specific pair:

	packed, err := buffercodec.LZSSCompressFixed(data, 12, 8)

LZSSDecompress reverses either form (the header is self-describing):

	out, err := buffercodec.LZSSDecompress(packed)

# RLE

RLECompress encodes fixed-bit-width runs, choosing sentinel framing for
bit widths that are multiples of 4 and flag framing otherwise:

	packed, err := buffercodec.RLECompress(data, 8, true, 24)
	out, err := buffercodec.RLEDecompressBytes(packed)

# Scope

This package consumes and produces in-memory []byte; it does not parse
source declarations, load images/fonts, or emit target code — those are
external collaborators.
*/
package buffercodec
