// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

import (
	"bytes"
	"testing"
)

func lzssTestInputs() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, hello world, hello again")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 500)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 4000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 300)},
		{name: "all-distinct", data: []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
	}
}

func TestLZSSCompressDecompressRoundTrip(t *testing.T) {
	paramSets := []struct{ windowBits, lengthBits int }{
		{3, 1}, {8, 4}, {12, 8}, {16, 16},
	}

	for _, in := range lzssTestInputs() {
		for _, p := range paramSets {
			t.Run(in.name, func(t *testing.T) {
				codec, err := NewLZSSCodec(p.windowBits, p.lengthBits, 22)
				if err != nil {
					t.Fatalf("NewLZSSCodec: %v", err)
				}
				tokens, stats := codec.Compress(in.data)
				out, err := codec.Decompress(tokens)
				if err != nil {
					t.Fatalf("Decompress: %v", err)
				}
				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch: got=%d bytes, want=%d bytes", len(out), len(in.data))
				}
				if stats.Literals+stats.References == 0 && len(in.data) > 0 {
					t.Fatalf("stats recorded no tokens for non-empty input")
				}
			})
		}
	}
}

func TestLZSSToBinaryFromBinaryRoundTrip(t *testing.T) {
	codec, err := NewLZSSCodec(12, 8, 22)
	if err != nil {
		t.Fatalf("NewLZSSCodec: %v", err)
	}

	data := bytes.Repeat([]byte("mississippi river "), 200)
	tokens, _ := codec.Compress(data)

	packed, err := codec.ToBinary(tokens)
	if err != nil {
		t.Fatalf("ToBinary: %v", err)
	}

	out, err := codec.FromBinary(packed)
	if err != nil {
		t.Fatalf("FromBinary: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("binary round-trip mismatch: got=%d bytes, want=%d bytes", len(out), len(data))
	}
}

// TestLZSSStatisticsSizeIsExact checks spec.md's invariant that the LZSS
// size predictor matches ToBinary's actual output length exactly (unlike
// RLE's predictor, which only bounds it).
func TestLZSSStatisticsSizeIsExact(t *testing.T) {
	codec, err := NewLZSSCodec(10, 6, 22)
	if err != nil {
		t.Fatalf("NewLZSSCodec: %v", err)
	}

	for _, in := range lzssTestInputs() {
		tokens, stats := codec.Compress(in.data)
		packed, err := codec.ToBinary(tokens)
		if err != nil {
			t.Fatalf("%s: ToBinary: %v", in.name, err)
		}
		if stats.Size() != len(packed) {
			t.Errorf("%s: stats.Size() = %d, want %d (actual packed length)", in.name, stats.Size(), len(packed))
		}
	}
}

func TestNewLZSSParametersValidation(t *testing.T) {
	cases := []struct {
		name                  string
		windowBits, lengthBits, sizeBitCount int
		wantErr               bool
	}{
		{"minimum-valid", 3, 1, 22, false},
		{"maximum-valid", 16, 16, 22, false},
		{"window-too-small", 2, 8, 22, true},
		{"window-too-large", 17, 8, 22, true},
		{"length-too-small", 8, 0, 22, true},
		{"length-too-large", 8, 17, 22, true},
		{"zero-size-bit-count", 8, 8, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewLZSSParameters(c.windowBits, c.lengthBits, c.sizeBitCount)
			if (err != nil) != c.wantErr {
				t.Fatalf("NewLZSSParameters(%d,%d,%d) err=%v, wantErr=%v", c.windowBits, c.lengthBits, c.sizeBitCount, err, c.wantErr)
			}
		})
	}
}

func TestMinimumBackreferenceFor(t *testing.T) {
	cases := []struct {
		referenceSize int
		want          int
	}{
		{8, 1}, {9, 2}, {16, 2}, {17, 3}, {24, 3}, {25, 4}, {33, 4},
	}
	for _, c := range cases {
		if got := minimumBackreferenceFor(c.referenceSize); got != c.want {
			t.Errorf("minimumBackreferenceFor(%d) = %d, want %d", c.referenceSize, got, c.want)
		}
	}
}

func FuzzLZSSCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(8), uint8(8))
	f.Add([]byte("hello world"), uint8(4), uint8(4))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(16), uint8(16))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(10), uint8(6))

	f.Fuzz(func(t *testing.T, data []byte, windowBits, lengthBits uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}
		w := int(windowBits%14) + 3
		l := int(lengthBits%16) + 1

		codec, err := NewLZSSCodec(w, l, 22)
		if err != nil {
			t.Fatalf("NewLZSSCodec: %v", err)
		}
		tokens, _ := codec.Compress(data)
		out, err := codec.Decompress(tokens)
		if err != nil {
			t.Fatalf("Decompress: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
