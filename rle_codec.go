// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

// RLECodec compresses and decompresses byte buffers with one fixed
// bit_width/sentinel-mode configuration.
type RLECodec struct {
	params RLEParameters
}

// NewRLECodec validates bitWidth/sizeBits and derives the rest.
func NewRLECodec(bitWidth int, dynamicSentinel bool, sizeBits int) (*RLECodec, error) {
	params, err := NewRLEParameters(bitWidth, dynamicSentinel, sizeBits)
	if err != nil {
		return nil, err
	}
	return &RLECodec{params: params}, nil
}

// Params returns the codec's parameters.
func (c *RLECodec) Params() RLEParameters {
	return c.params
}

// groupValue reads up to byteWidth bytes little-endian starting at data[pos:].
func groupValue(data []byte, pos, byteWidth int) uint64 {
	var value uint64
	end := pos + byteWidth
	if end > len(data) {
		end = len(data)
	}
	for i := pos; i < end; i++ {
		value |= uint64(data[i]) << uint(8*(i-pos))
	}
	return value
}

// Compress scans data in byteWidth-sized little-endian groups, emitting a
// (value, count) run wherever minimumLoop or more consecutive groups share
// a value (capped at maxRunCount), and bare values otherwise. It finishes
// with AnalyzeSentinel.
func (c *RLECodec) Compress(data []byte) ([]RLEToken, *RLEStatistics) {
	byteWidth := c.params.ByteWidth
	maxCount := c.params.maxRunCount()
	stats := newRLEStatistics(c.params)
	tokens := make([]RLEToken, 0, len(data)/byteWidth+1)

	position := 0
	for position < len(data) {
		value := groupValue(data, position, byteWidth)
		count := 1
		position += byteWidth

		for position < len(data) {
			if groupValue(data, position, byteWidth) != value {
				break
			}
			count++
			position += byteWidth
			if count >= maxCount {
				break
			}
		}

		if count >= c.params.MinimumLoop {
			tokens = append(tokens, RLEToken{IsRun: true, Value: value, Count: count})
			stats.AddReference(count)
		} else {
			for i := 0; i < count; i++ {
				tokens = append(tokens, RLEToken{Value: value})
				stats.AddLiteral()
			}
		}
	}

	stats.AnalyzeSentinel(tokens)
	return tokens, stats
}

// valueBytes returns value's byteWidth-byte little-endian encoding.
func valueBytes(value uint64, byteWidth int) []byte {
	out := make([]byte, byteWidth)
	for i := 0; i < byteWidth; i++ {
		out[i] = byte(value >> uint(8*i))
	}
	return out
}

// Decompress expands each token into byteWidth-byte little-endian groups:
// a bare value once, a run Count times. Run expansion uses the
// exponential-doubling append from copy.go since RLE runs never overlap
// their own source.
func (c *RLECodec) Decompress(tokens []RLEToken) []byte {
	byteWidth := c.params.ByteWidth
	out := make([]byte, 0, len(tokens)*byteWidth)

	for _, tok := range tokens {
		value := valueBytes(tok.Value, byteWidth)
		if tok.IsRun {
			out = appendRepeated(out, value, tok.Count)
		} else {
			out = append(out, value...)
		}
	}

	return out
}
