// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

// ToBinary packs tokens into the wire format from spec.md §4.3. tokens
// must be non-empty (RLECompress special-cases the empty buffer before
// reaching here, since the header's token_count field stores count-1).
func (c *RLECodec) ToBinary(tokens []RLEToken, stats *RLEStatistics) ([]byte, error) {
	if len(tokens) == 0 {
		return nil, ErrConfiguration
	}
	if len(tokens) > (1 << uint(c.params.SizeBits)) {
		return nil, ErrOverflow
	}

	var bs BitStream
	bitWidth := c.params.BitWidth
	bs.Append(7, uint64(bitWidth-1))

	useSentinel := uint64(0)
	if c.params.UseSentinel {
		useSentinel = 1
	}
	bs.Append(1, useSentinel)
	bs.Append(c.params.SizeBits, uint64(len(tokens)-1))

	sentinel := uint64(0)
	if c.params.UseSentinel {
		sentinel = stats.Sentinel
		bs.Append(bitWidth, sentinel)
	}
	countWidth := bitWidth
	if !c.params.UseSentinel {
		countWidth = bitWidth + 1
	}

	appendRun := func(value uint64, count int) {
		if c.params.UseSentinel {
			bs.Append(bitWidth, sentinel)
			bs.Append(bitWidth, value)
		} else {
			bs.Append(1, 1)
			bs.Append(bitWidth, value)
		}
		bs.Append(countWidth, uint64(count-1))
	}

	for _, tok := range tokens {
		switch {
		case tok.IsRun:
			appendRun(tok.Value, tok.Count)
		case c.params.UseSentinel && tok.Value == sentinel:
			appendRun(tok.Value, 1)
		default:
			if !c.params.UseSentinel {
				bs.Append(1, 0)
			}
			bs.Append(bitWidth, tok.Value)
		}
	}

	return bs.ToArray(), nil
}

// FromBinaryTokens reads the header written by ToBinary. bit_width and
// use_sentinel are both self-describing (recovered from the stream);
// size_bits is not re-transmitted, so c.Params().SizeBits must match what
// the encoder used. Returns the token stream; a bare value that ToBinary
// escaped because it equals the sentinel comes back as a run of count 1,
// so the expanded bytes, not the tokens, match the encoder's input.
func (c *RLECodec) FromBinaryTokens(data []byte) ([]RLEToken, error) {
	var bs BitStream
	bs.FromArray(data)
	bitsLeft := func() int { return 8*len(data) - 8*bs.readBytePos - bs.readBitInPos }

	bitWidth := int(bs.Read(7)) + 1
	if bitWidth < 1 || bitWidth > 64 {
		return nil, ErrMalformed
	}
	useSentinel := bs.Read(1) == 1

	count := int(bs.Read(c.params.SizeBits)) + 1

	var sentinel uint64
	if useSentinel {
		sentinel = bs.Read(bitWidth)
	}

	tokenBits := bitWidth + 1
	if useSentinel {
		tokenBits = bitWidth
	}
	tokens := make([]RLEToken, 0, count)
	for i := 0; i < count; i++ {
		if bitsLeft() < tokenBits {
			return nil, ErrTruncated
		}
		if useSentinel {
			value := bs.Read(bitWidth)
			if value == sentinel {
				if bitsLeft() < 2*bitWidth {
					return nil, ErrTruncated
				}
				value = bs.Read(bitWidth)
				runCount := int(bs.Read(bitWidth)) + 1
				tokens = append(tokens, RLEToken{IsRun: true, Value: value, Count: runCount})
			} else {
				tokens = append(tokens, RLEToken{Value: value})
			}
		} else {
			isRun := bs.Read(1) == 1
			value := bs.Read(bitWidth)
			if isRun {
				if bitsLeft() < bitWidth+1 {
					return nil, ErrTruncated
				}
				runCount := int(bs.Read(bitWidth+1)) + 1
				tokens = append(tokens, RLEToken{IsRun: true, Value: value, Count: runCount})
			} else {
				tokens = append(tokens, RLEToken{Value: value})
			}
		}
	}

	return tokens, nil
}

// FromBinaryBytes reads the header written by ToBinary and returns the
// decompressed bytes directly. byteWidth is derived from bitWidth
// (ceil(bitWidth/8)), recovered from the stream's own header.
func (c *RLECodec) FromBinaryBytes(data []byte) ([]byte, error) {
	tokens, err := c.FromBinaryTokens(data)
	if err != nil {
		return nil, err
	}

	var bs BitStream
	bs.FromArray(data)
	bitWidth := int(bs.Read(7)) + 1
	byteWidth := (bitWidth + 7) / 8

	decoder := &RLECodec{params: RLEParameters{BitWidth: bitWidth, ByteWidth: byteWidth}}
	return decoder.Decompress(tokens), nil
}
