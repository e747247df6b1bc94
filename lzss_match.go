// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

import "sync"

// lzssMatcher holds the probe-key -> candidate-position map used by
// LZSSCodec.Compress. It grows without explicit bucket trimming beyond the
// oldest-position filter in findMatch, per spec.md §4.1's documented
// quadratic-worst-case trade-off.
type lzssMatcher struct {
	candidates map[string][]int
}

// matcherPool recycles matcher scratch state across search-driver jobs,
// the same way the teacher's sliding_window_pool.go recycles match-finder
// state across LZO1X-999 compressions.
var matcherPool = sync.Pool{
	New: func() any {
		return &lzssMatcher{candidates: make(map[string][]int)}
	},
}

// acquireMatcher returns a matcher with an empty candidate map.
func acquireMatcher() *lzssMatcher {
	m, _ := matcherPool.Get().(*lzssMatcher)
	clear(m.candidates)
	return m
}

// releaseMatcher returns m to the pool.
func releaseMatcher(m *lzssMatcher) {
	matcherPool.Put(m)
}

// probeKey returns the probe key at position: minimumBackreference bytes,
// or fewer at the tail of data.
func probeKey(data []byte, position, minimumBackreference int) string {
	end := position + minimumBackreference
	if end > len(data) {
		end = len(data)
	}
	return string(data[position:end])
}

// commonPrefixCircular returns the length of the common prefix between a
// circular repetition of data[c:position] and data[position:], capped at
// maxLength. Circular repetition (index i % gap on the left side) lets
// runs longer than the gap between c and position be represented, which
// is what makes run-length-style back-references possible.
func commonPrefixCircular(data []byte, c, position, maxLength int) int {
	gap := position - c
	if gap <= 0 {
		return 0
	}

	count := len(data) - position
	if count > maxLength {
		count = maxLength
	}

	for i := 0; i < count; i++ {
		if data[c+i%gap] != data[position+i] {
			return i
		}
	}
	return count
}

// findMatch looks up the probe key at position, returning the best
// candidate position and match length among surviving (not yet evicted)
// candidates. found is false when the probe key was unseen (a literal
// must be emitted) or the best match is shorter than minimumBackreference.
// Either way, position is recorded against the probe key for future scans.
func (m *lzssMatcher) findMatch(data []byte, position int, params LZSSParameters) (bestCandidate, bestLength int, found bool) {
	key := probeKey(data, position, params.MinimumBackreference)
	existing, seen := m.candidates[key]
	if !seen {
		m.candidates[key] = []int{position}
		return 0, 0, false
	}

	history := (1 << uint(params.WindowBits)) + 1
	maxLength := params.MinimumBackreference + (1 << uint(params.LengthBits)) - 1
	oldest := position - history

	bestCandidate = position
	bestLength = 0
	surviving := make([]int, 0, len(existing)+1)

	for _, c := range existing {
		if c <= oldest {
			continue
		}
		surviving = append(surviving, c)
		if bestLength < maxLength {
			prefix := commonPrefixCircular(data, c, position, maxLength)
			if prefix > bestLength {
				bestLength = prefix
				bestCandidate = c
			}
		}
	}

	surviving = append(surviving, position)
	m.candidates[key] = surviving

	return bestCandidate, bestLength, bestLength >= params.MinimumBackreference
}
