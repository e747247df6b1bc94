// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

// LZSSCodec compresses and decompresses byte buffers with one fixed
// (WindowBits, LengthBits) pair. Construct with NewLZSSCodec; codecs are
// immutable once built and safe to share across goroutines (each call
// still acquires its own scratch matcher).
type LZSSCodec struct {
	params LZSSParameters
}

// NewLZSSCodec validates windowBits/lengthBits/sizeBitCount and derives
// MinimumBackreference and ReferenceSize.
func NewLZSSCodec(windowBits, lengthBits, sizeBitCount int) (*LZSSCodec, error) {
	params, err := NewLZSSParameters(windowBits, lengthBits, sizeBitCount)
	if err != nil {
		return nil, err
	}
	return &LZSSCodec{params: params}, nil
}

// Params returns the codec's parameters.
func (c *LZSSCodec) Params() LZSSParameters {
	return c.params
}

// Compress walks data left to right, emitting a literal wherever the
// current probe key is unseen or the best surviving candidate's match is
// shorter than MinimumBackreference, and a back-reference otherwise. See
// spec.md §4.1 and lzss_match.go for the matcher itself.
func (c *LZSSCodec) Compress(data []byte) ([]LZSSToken, *LZSSStatistics) {
	stats := newLZSSStatistics(c.params)
	tokens := make([]LZSSToken, 0, len(data))

	matcher := acquireMatcher()
	defer releaseMatcher(matcher)

	position := 0
	for position < len(data) {
		candidate, length, found := matcher.findMatch(data, position, c.params)
		if !found {
			tokens = append(tokens, LZSSToken{Literal: data[position]})
			stats.AddLiteral()
			position++
			continue
		}

		offset := candidate - position // negative
		tokens = append(tokens, LZSSToken{IsBackRef: true, Offset: offset, Length: length})
		stats.AddReference(-offset, length)
		position += length
	}

	return tokens, stats
}

// Decompress reverses Compress. Back-reference bytes are copied one at a
// time (never block-copied) because a back-reference may be
// self-overlapping: offset can be less than length, in which case bytes
// just written become valid source for the rest of the copy.
func (c *LZSSCodec) Decompress(tokens []LZSSToken) ([]byte, error) {
	out := make([]byte, 0, len(tokens))

	for _, tok := range tokens {
		if !tok.IsBackRef {
			out = append(out, tok.Literal)
			continue
		}

		srcStart := len(out) + tok.Offset // Offset is negative
		if srcStart < 0 {
			return nil, ErrMalformed
		}

		for i := 0; i < tok.Length; i++ {
			out = append(out, out[srcStart+i])
		}
	}

	return out, nil
}
