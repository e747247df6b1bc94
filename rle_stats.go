// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

// RLEStatistics accumulates token counts during Compress, analyzes the
// sentinel choice (sentinel mode only), and predicts the encoded size.
type RLEStatistics struct {
	params RLEParameters

	Literals      int
	References    int
	MaxLength     int
	HasSentinel   bool
	Sentinel      uint64
	SentinelCount int
	headerBits    int
}

// newRLEStatistics seeds the header-bit overhead: 7 (bit_width-1 field) +
// 1 (use_sentinel flag) + size_bits (count) + bit_width (sentinel value),
// counted only in sentinel mode. In flag mode headerBits is 0, so the
// header is not counted; the per-token flag bit is counted inside Size()'s
// per-token width instead.
func newRLEStatistics(params RLEParameters) *RLEStatistics {
	headerBits := 0
	if params.UseSentinel {
		headerBits = 7 + 1 + params.SizeBits + params.BitWidth
	}
	return &RLEStatistics{params: params, headerBits: headerBits}
}

// AddLiteral records one bare-value token.
func (s *RLEStatistics) AddLiteral() {
	s.Literals++
}

// AddReference records one (value, count) run token.
func (s *RLEStatistics) AddReference(count int) {
	s.References++
	if count > s.MaxLength {
		s.MaxLength = count
	}
}

// AnalyzeSentinel chooses the sentinel value (sentinel mode only) per
// spec.md §4.3: dynamic mode picks the smallest absent literal value, or
// (if none is absent) the least-frequent literal value, counting its
// occurrences as SentinelCount (they must be escaped as length-1 runs).
// Fixed mode uses the masked module-level constant and counts its
// literal occurrences.
func (s *RLEStatistics) AnalyzeSentinel(tokens []RLEToken) {
	if !s.params.UseSentinel {
		return
	}
	s.HasSentinel = true

	if s.params.DynamicSentinel {
		counts := map[uint64]int{}
		for _, tok := range tokens {
			if !tok.IsRun {
				counts[tok.Value]++
			}
		}

		limit := maskForWidth(s.params.BitWidth)
		found := false
		for v := uint64(0); v <= limit; v++ {
			if _, ok := counts[v]; !ok {
				s.Sentinel = v
				s.SentinelCount = 0
				found = true
				break
			}
		}
		if !found {
			leastValue, leastCount := uint64(0), -1
			for v, n := range counts {
				if leastCount < 0 || n < leastCount || (n == leastCount && v < leastValue) {
					leastValue, leastCount = v, n
				}
			}
			s.Sentinel = leastValue
			s.SentinelCount = leastCount
		}
	} else {
		s.Sentinel = rleSentinelForBitWidth(s.params.BitWidth)
	}

	if s.SentinelCount < 1 {
		count := 0
		for _, tok := range tokens {
			if !tok.IsRun && tok.Value == s.Sentinel {
				count++
			}
		}
		s.SentinelCount = count
	}
}

// Size predicts the encoded byte length per spec.md §4.3's formula. In
// sentinel mode it equals ToBinary's output length (each escaped literal
// is counted as a literal plus SentinelCount's two extra fields). In flag
// mode it leaves out the 7+1+size_bits header bits (see newRLEStatistics),
// so it under-counts by that much.
func (s *RLEStatistics) Size() int {
	width := s.params.BitWidth
	if !s.params.UseSentinel {
		width++
	}

	refMultiplier := 2
	if s.params.UseSentinel {
		refMultiplier = 3
	}

	bits := s.headerBits
	bits += s.Literals * width
	bits += s.References * width * refMultiplier
	bits += s.SentinelCount * width * 2

	return (bits + 7) / 8
}
