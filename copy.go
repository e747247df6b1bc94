// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

// appendRepeated appends count copies of value (already byteWidth bytes,
// little-endian) to dst and returns the grown slice. Unlike an LZSS
// back-reference, an RLE run never reads from its own not-yet-written
// output, so the full exponential-doubling trick applies (no byte-by-byte
// fallback is needed): write one copy, then double the copied region
// until count copies are present.
func appendRepeated(dst []byte, value []byte, count int) []byte {
	if count <= 0 {
		return dst
	}

	w := len(value)
	start := len(dst)
	total := start + count*w

	if cap(dst) < total {
		grown := make([]byte, len(dst), total)
		copy(grown, dst)
		dst = grown
	}

	dst = dst[:start+w]
	copy(dst[start:], value)
	copied := 1

	for copied < count {
		n := copy(dst[start+copied*w:total], dst[start:start+copied*w])
		copied += n / w
		dst = dst[:start+copied*w]
	}

	return dst
}
