// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

// LZSSStatistics accumulates token counts during Compress and predicts the
// encoded size without materialising the binary form.
type LZSSStatistics struct {
	params LZSSParameters

	Literals     int
	References   int
	MaxWindow    int
	MaxLength    int
	OverheadBits int
}

// newLZSSStatistics seeds the fixed header overhead from params:
// size_bit_count + window_bits field (4) + length_bits field (4) +
// minimum_backreference field (2).
func newLZSSStatistics(params LZSSParameters) *LZSSStatistics {
	return &LZSSStatistics{
		params:       params,
		OverheadBits: params.SizeBitCount + 4 + 4 + 2,
	}
}

// AddLiteral records one literal-byte token.
func (s *LZSSStatistics) AddLiteral() {
	s.Literals++
}

// AddReference records one back-reference token and tracks the running
// maxima of offset and length (diagnostic only; Size() uses the codec's
// fixed window_bits/length_bits widths, not these maxima).
func (s *LZSSStatistics) AddReference(offset, length int) {
	s.References++
	if offset > s.MaxWindow {
		s.MaxWindow = offset
	}
	if length > s.MaxLength {
		s.MaxLength = length
	}
}

// Size predicts the encoded byte length: header bits, plus 9 bits per
// literal (1 flag + 8 data bits), plus (1+window_bits+length_bits) bits
// per reference, rounded up to a whole byte.
func (s *LZSSStatistics) Size() int {
	bits := s.OverheadBits
	bits += s.Literals * 9
	bits += s.References * (1 + s.params.WindowBits + s.params.LengthBits)
	return (bits + 7) / 8
}
