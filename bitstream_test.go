// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

import "testing"

func TestBitStreamAppendReadRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		writes []struct {
			count int
			value uint64
		}
	}{
		{
			name: "byte-aligned",
			writes: []struct {
				count int
				value uint64
			}{{8, 0xAB}, {8, 0xCD}},
		},
		{
			name: "unaligned-mix",
			writes: []struct {
				count int
				value uint64
			}{{4, 0x5}, {1, 1}, {3, 0x6}, {16, 0xBEEF}},
		},
		{
			name: "wide-value",
			writes: []struct {
				count int
				value uint64
			}{{22, 1 << 20}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bs BitStream
			for _, w := range tt.writes {
				bs.Append(w.count, w.value)
			}
			packed := bs.ToArray()

			var reader BitStream
			reader.FromArray(packed)
			for _, w := range tt.writes {
				got := reader.Read(w.count)
				mask := uint64(1)<<uint(w.count) - 1
				if got != w.value&mask {
					t.Fatalf("Read(%d) = %#x, want %#x", w.count, got, w.value&mask)
				}
			}
		})
	}
}

func TestBitStreamRemaining(t *testing.T) {
	var bs BitStream
	bs.Append(8, 0xFF)
	packed := bs.ToArray()

	var reader BitStream
	reader.FromArray(packed)
	if !reader.Remaining() {
		t.Fatal("Remaining() = false before any read")
	}
	reader.Read(8)
	if reader.Remaining() {
		t.Fatal("Remaining() = true after consuming the whole buffer")
	}
}

func TestBitStreamShortReadOnEOF(t *testing.T) {
	var bs BitStream
	bs.Append(3, 0x5)
	packed := bs.ToArray()

	var reader BitStream
	reader.FromArray(packed)
	reader.Read(3)
	// Nothing left; a further read should return 0, not panic.
	if got := reader.Read(8); got != 0 {
		t.Fatalf("Read past EOF = %#x, want 0", got)
	}
}

func TestBitWidthPerValue(t *testing.T) {
	cases := []struct {
		value int
		want  int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{255, 8},
		{256, 9},
	}
	for _, c := range cases {
		if got := bitWidthPerValue(c.value); got != c.want {
			t.Errorf("bitWidthPerValue(%d) = %d, want %d", c.value, got, c.want)
		}
	}
}
