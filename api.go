// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

// defaultSizeBitCount is the LZSS token-count header width used by every
// entry point below; callers that need a different width should build an
// LZSSCodec directly instead of going through these wrappers.
const defaultSizeBitCount = 22

// defaultRLESizeBits is the RLE token-count header width RLEDecompressTokens
// and RLEDecompressBytes assume. RLECompress accepts an explicit sizeBits
// so callers building their own codec can diverge from it, but the two
// decompress wrappers below, like LZSSDecompress, only know how to read
// back what the package's own default produces; a caller that passes a
// different sizeBits to RLECompress must decode with a matching RLECodec
// built directly instead of these wrappers.
const defaultRLESizeBits = 24

// LZSSCompress searches the (window_bits, length_bits) grid for the
// smallest encoding of data and returns the packed binary form together
// with the parameters the search settled on and the number of
// (window_bits, length_bits) pairs it evaluated. maxLengthBits nil means
// "same as maxWindowBits", matching the max_length_bits=None default.
func LZSSCompress(data []byte, maxWindowBits int, maxLengthBits *int, workers int) (packed []byte, chosenWindowBits, chosenLengthBits, passCount int, err error) {
	opts := DefaultSearchOptions()
	opts.MaxWindowBits = maxWindowBits
	if maxLengthBits != nil {
		opts.MaxLengthBits = *maxLengthBits
	}
	if workers > 0 {
		opts.Workers = workers
	}

	best, err := FindBestLZSSParameters(data, opts)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	codec, err := NewLZSSCodec(best.WindowBits, best.LengthBits, defaultSizeBitCount)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	packed, err = codec.ToBinary(best.Tokens)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return packed, best.WindowBits, best.LengthBits, best.PassCount, nil
}

// LZSSCompressFixed skips the search and encodes data with one specific
// (windowBits, lengthBits) pair.
func LZSSCompressFixed(data []byte, windowBits, lengthBits int) ([]byte, error) {
	codec, err := NewLZSSCodec(windowBits, lengthBits, defaultSizeBitCount)
	if err != nil {
		return nil, err
	}
	tokens, _ := codec.Compress(data)
	return codec.ToBinary(tokens)
}

// LZSSDecompress reverses either LZSSCompress or LZSSCompressFixed. The
// header is self-describing for window_bits/length_bits/
// minimum_backreference; the token-count field width is not
// re-transmitted, so packed must have been produced by one of this
// package's own compress entry points (which all use defaultSizeBitCount).
func LZSSDecompress(packed []byte) ([]byte, error) {
	codec := &LZSSCodec{params: LZSSParameters{SizeBitCount: defaultSizeBitCount}}
	return codec.FromBinary(packed)
}

// RLECompress encodes data as fixed-bit-width runs, choosing sentinel
// framing for bit widths that are multiples of 4 and flag framing
// otherwise. An empty buffer encodes to an empty packed form directly,
// since ToBinary's header format has no representation for zero tokens
// (its token-count field stores count-1).
func RLECompress(data []byte, bitWidth int, dynamicSentinel bool, sizeBits int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	codec, err := NewRLECodec(bitWidth, dynamicSentinel, sizeBits)
	if err != nil {
		return nil, err
	}
	tokens, stats := codec.Compress(data)
	return codec.ToBinary(tokens, stats)
}

// RLEDecompressTokens reverses RLECompress into its token stream without
// expanding runs, for callers that want to inspect the compressed shape
// directly.
func RLEDecompressTokens(packed []byte) ([]RLEToken, error) {
	if len(packed) == 0 {
		return nil, nil
	}
	codec := &RLECodec{params: RLEParameters{SizeBits: defaultRLESizeBits}}
	return codec.FromBinaryTokens(packed)
}

// RLEDecompressBytes reverses RLECompress directly into decompressed
// bytes.
func RLEDecompressBytes(packed []byte) ([]byte, error) {
	if len(packed) == 0 {
		return []byte{}, nil
	}
	codec := &RLECodec{params: RLEParameters{SizeBits: defaultRLESizeBits}}
	return codec.FromBinaryBytes(packed)
}
