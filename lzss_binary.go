// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

// ToBinary packs tokens into the wire format from spec.md §4.1:
// 4-bit (window_bits-3), 4-bit (length_bits-1), 2-bit
// (minimum_backreference-1), size_bit_count-wide token count, then one
// flag bit per token followed by either an 8-bit literal or a
// (window_bits-bit offset, length_bits-bit length) back-reference.
func (c *LZSSCodec) ToBinary(tokens []LZSSToken) ([]byte, error) {
	if len(tokens) >= (1 << uint(c.params.SizeBitCount)) {
		return nil, ErrOverflow
	}

	var bs BitStream
	bs.Append(4, uint64(c.params.WindowBits-3))
	bs.Append(4, uint64(c.params.LengthBits-1))
	bs.Append(2, uint64(c.params.MinimumBackreference-1))
	bs.Append(c.params.SizeBitCount, uint64(len(tokens)))

	for _, tok := range tokens {
		if tok.IsBackRef {
			bs.Append(1, 1)
			bs.Append(c.params.WindowBits, uint64(-tok.Offset-1))
			bs.Append(c.params.LengthBits, uint64(tok.Length-c.params.MinimumBackreference))
		} else {
			bs.Append(1, 0)
			bs.Append(8, uint64(tok.Literal))
		}
	}

	return bs.ToArray(), nil
}

// FromBinary reads the header written by ToBinary, reconstructs
// window_bits/length_bits/minimum_backreference from it (that part of the
// header is self-describing), reads SizeBitCount bits for the token count
// (size_bit_count itself is not re-transmitted — the caller must use the
// same codec configuration the encoder used), reads that many tokens, and
// returns the decompressed bytes.
func (c *LZSSCodec) FromBinary(data []byte) ([]byte, error) {
	var bs BitStream
	bs.FromArray(data)
	bitsLeft := func() int { return 8*len(data) - 8*bs.readBytePos - bs.readBitInPos }

	if bitsLeft() < 10+c.params.SizeBitCount {
		return nil, ErrTruncated
	}
	windowBits := int(bs.Read(4)) + 3
	lengthBits := int(bs.Read(4)) + 1
	minimumBackreference := int(bs.Read(2)) + 1

	if windowBits < 3 || windowBits > 16 || lengthBits < 1 || lengthBits > 16 {
		return nil, ErrMalformed
	}

	tokenCount := int(bs.Read(c.params.SizeBitCount))

	tokens := make([]LZSSToken, 0, tokenCount)
	for i := 0; i < tokenCount; i++ {
		if bitsLeft() < 1 {
			return nil, ErrTruncated
		}
		if bs.Read(1) == 1 {
			if bitsLeft() < windowBits+lengthBits {
				return nil, ErrTruncated
			}
			offset := -int(bs.Read(windowBits)) - 1
			length := int(bs.Read(lengthBits)) + minimumBackreference
			tokens = append(tokens, LZSSToken{IsBackRef: true, Offset: offset, Length: length})
		} else {
			if bitsLeft() < 8 {
				return nil, ErrTruncated
			}
			tokens = append(tokens, LZSSToken{Literal: byte(bs.Read(8))})
		}
	}

	decoder := &LZSSCodec{params: LZSSParameters{
		WindowBits:           windowBits,
		LengthBits:           lengthBits,
		MinimumBackreference: minimumBackreference,
	}}
	return decoder.Decompress(tokens)
}
