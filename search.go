// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

import (
	"sort"
	"sync"
)

// CompressionResult is the outcome of one (WindowBits, LengthBits) trial
// during FindBestLZSSParameters: the predicted size, and the tokens and
// statistics that produced it (so the caller can binary-encode the winner
// without recompressing).
type CompressionResult struct {
	WindowBits int
	LengthBits int
	Size       int
	Tokens     []LZSSToken
	Stats      *LZSSStatistics
	// PassCount is the total number of (WindowBits, LengthBits) pairs
	// FindBestLZSSParameters evaluated to produce this result.
	PassCount int
}

// betterResult reports whether a should be preferred over b: smaller
// predicted size wins, ties broken toward the smaller (WindowBits,
// LengthBits) pair for determinism.
func betterResult(a, b CompressionResult) bool {
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	if a.WindowBits != b.WindowBits {
		return a.WindowBits < b.WindowBits
	}
	return a.LengthBits < b.LengthBits
}

// searchResults is the shared result accumulator every search worker
// appends to, a mutex-guarded slice rather than a channel, per the
// teacher-pack guidance that this job shape (irregular, order-independent
// fan-in of a handful of structured results) favours a plain lock over
// channel plumbing.
type searchResults struct {
	mu   sync.Mutex
	rows []CompressionResult
}

func (s *searchResults) add(r CompressionResult) {
	s.mu.Lock()
	s.rows = append(s.rows, r)
	s.mu.Unlock()
}

func (s *searchResults) has(windowBits, lengthBits int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.WindowBits == windowBits && r.LengthBits == lengthBits {
			return true
		}
	}
	return false
}

func (s *searchResults) seriesWhere(keep func(CompressionResult) bool) []CompressionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []CompressionResult
	for _, r := range s.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *searchResults) best() (CompressionResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rows) == 0 {
		return CompressionResult{}, false
	}
	best := s.rows[0]
	for _, r := range s.rows[1:] {
		if betterResult(r, best) {
			best = r
		}
	}
	return best, true
}

func (s *searchResults) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// findReversion scans series (one axis of CompressionResult, the other
// held fixed) from maxKey downward and reports the key at which the
// running-lowest size last improved, tolerating worseAllowed consecutive
// worsening steps (a size equal to the running lowest does not count)
// before giving up — ported from CompressionRunner's
// find_reversion in compress.py. ok is false when series has a gap (some
// key between the series' floor and maxKey was never evaluated), which
// the caller should treat as "no reversion point found yet".
func findReversion(series []CompressionResult, maxKey int, getKey func(CompressionResult) int, worseAllowed int) (key int, ok bool, remaining int) {
	sorted := append([]CompressionResult(nil), series...)
	sort.Slice(sorted, func(i, j int) bool { return getKey(sorted[i]) > getKey(sorted[j]) })

	const maxInt = int(^uint(0) >> 1)
	lowestSize := maxInt
	lowestKey := maxKey
	expected := maxKey
	allowed := worseAllowed

	for _, r := range sorted {
		k := getKey(r)
		if k != expected {
			return 0, false, worseAllowed
		}
		if r.Size > lowestSize {
			allowed--
			if allowed < 0 {
				return lowestKey, true, allowed
			}
		} else {
			if r.Size < lowestSize {
				allowed = worseAllowed
			}
			lowestKey = k
			lowestSize = r.Size
		}
		expected--
	}
	return lowestKey, true, allowed
}

// descendAxis drives one axis of the directional search down from start
// towards floor+1: each round it submits as many trials as the pool has
// free slots for, then calls pool.JoinFinished to reap whatever lands
// (blocking if jobs are still outstanding, returning 0 only once the pool
// is fully idle) and re-checks the reversion condition on the just-reaped
// series. Submission stops as soon as findReversion reports worseAllowed+1
// consecutive worsening steps; the round loop itself stops once the
// floor is reached and nothing is left outstanding. This mirrors the
// incremental while-loop in CompressionRunner.find_best_compression
// (compress.py), which interleaves submission, reaping and the reversion
// check instead of scanning the whole axis first and deciding after.
func descendAxis(pool *Pool, results *searchResults, start, floor, maxKey, worseAllowed int, submit func(axisValue int), seriesFor func() []CompressionResult, getKey func(CompressionResult) int) int {
	lowestKey := maxKey
	cursor := start
	for {
		budget := pool.Available()
		for budget > 0 && cursor > floor {
			submit(cursor)
			cursor--
			budget--
		}

		reaped := pool.JoinFinished()
		if reaped > 0 {
			if key, ok, remaining := findReversion(seriesFor(), maxKey, getKey, worseAllowed); ok {
				lowestKey = key
				if remaining < 0 {
					break
				}
			}
		}

		if cursor <= floor && reaped == 0 {
			break
		}
	}
	return lowestKey
}

// FindBestLZSSParameters searches (window_bits, length_bits) pairs for the
// smallest predicted LZSS encoding of buffer. It seeds half the worker
// budget descending window_bits (length_bits held at its maximum) and the
// other half descending length_bits (window_bits held at its maximum),
// descends each axis in turn until worse_allowed+1 consecutive results
// have worsened, then evaluates the full 3x3 neighborhood around the
// pair formed by the two axes' lowest points
// before picking the smallest result. Mirrors CompressionRunner's
// find_best_compression in compress.py; concurrency runs over a Pool
// built on errgroup, so correctness at Workers==1 falls out of Pool's own
// capacity-1 guarantee rather than a special case here.
func FindBestLZSSParameters(buffer []byte, opts *SearchOptions) (CompressionResult, error) {
	if opts == nil {
		opts = DefaultSearchOptions()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	maxWindowBits := sanitizeBufferAddress(len(buffer), opts.MaxWindowBits)
	maxLengthBits := maxWindowBits
	if opts.MaxLengthBits > 0 {
		maxLengthBits = sanitizeBufferAddress(len(buffer), opts.MaxLengthBits)
	}
	if maxWindowBits < 3 {
		maxWindowBits = 3
	}
	if maxLengthBits < 1 {
		maxLengthBits = 1
	}

	results := &searchResults{}
	pool := NewPool(workers, opts.UseMainProcess)

	var firstErr error
	trial := func(windowBits, lengthBits int) {
		if windowBits <= 2 || windowBits > maxWindowBits || lengthBits < 1 || lengthBits > maxLengthBits {
			return
		}
		if results.has(windowBits, lengthBits) {
			return
		}
		codec, err := NewLZSSCodec(windowBits, lengthBits, 22)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		if err := pool.Start(func() {
			tokens, stats := codec.Compress(buffer)
			results.add(CompressionResult{
				WindowBits: windowBits,
				LengthBits: lengthBits,
				Size:       stats.Size(),
				Tokens:     tokens,
				Stats:      stats,
			})
		}); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	// Seed: split the worker budget between descending window_bits (at
	// max_length_bits) and descending length_bits (at max_window_bits).
	initialWindowCount := (workers + 1) / 2
	startWindowBits := maxWindowBits - initialWindowCount
	startLengthBits := maxLengthBits - workers + initialWindowCount - 1

	for w := maxWindowBits; w > startWindowBits && w > 2; w-- {
		trial(w, maxLengthBits)
	}
	for l := maxLengthBits - 1; l > startLengthBits && l > 0; l-- {
		trial(maxWindowBits, l)
	}
	if err := pool.JoinAll(); err != nil && firstErr == nil {
		firstErr = err
	}

	// Descend window_bits at max_length_bits until it stops improving,
	// then descend length_bits at max_window_bits the same way. Both use
	// descendAxis, which submits only as many trials as the pool has free
	// slots for, reaps via JoinFinished, and checks the reversion
	// condition after every reaped batch — stopping submission as soon as
	// worse_allowed+1 consecutive results have worsened, rather than
	// scanning the whole axis down to its floor.
	lowestWindowBits := descendAxis(pool, results, startWindowBits, 2, maxWindowBits, opts.WorseAllowed,
		func(w int) { trial(w, maxLengthBits) },
		func() []CompressionResult {
			return results.seriesWhere(func(r CompressionResult) bool { return r.LengthBits == maxLengthBits })
		},
		func(r CompressionResult) int { return r.WindowBits },
	)
	if err := pool.JoinAll(); err != nil && firstErr == nil {
		firstErr = err
	}

	lowestLengthBits := descendAxis(pool, results, startLengthBits, 0, maxLengthBits, opts.WorseAllowed,
		func(l int) { trial(maxWindowBits, l) },
		func() []CompressionResult {
			return results.seriesWhere(func(r CompressionResult) bool { return r.WindowBits == maxWindowBits })
		},
		func(r CompressionResult) int { return r.LengthBits },
	)
	if err := pool.JoinAll(); err != nil && firstErr == nil {
		firstErr = err
	}

	// Refine: the full 3x3 neighborhood around the surviving corner,
	// filling in any pair the two descents above skipped.
	for w := lowestWindowBits - 1; w <= lowestWindowBits+1; w++ {
		for l := lowestLengthBits - 1; l <= lowestLengthBits+1; l++ {
			trial(w, l)
		}
	}
	if err := pool.JoinAll(); err != nil && firstErr == nil {
		firstErr = err
	}

	if firstErr != nil {
		return CompressionResult{}, firstErr
	}

	best, ok := results.best()
	if !ok {
		return CompressionResult{}, ErrNoViableCompression
	}
	best.PassCount = results.count()
	return best, nil
}
