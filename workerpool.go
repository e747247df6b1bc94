// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Pool is a bounded parallel executor, grounded on the teacher's
// `sliding_window_pool.go` reuse pattern and on the original
// ProcessController (process_controller.py): Start spawns a worker when a
// slot is free, runs inline on the caller when exactly one slot remains
// and UseMainProcess is set (reserving a spawn for batch jobs), or blocks
// until a slot frees up. Correctness holds at capacity 1, where Start is
// effectively a direct call.
type Pool struct {
	capacity       int
	useMainProcess bool

	mu               sync.Mutex
	cond             *sync.Cond
	running          int
	finishedUnreaped int
	group            *errgroup.Group
	cancel           context.CancelFunc
	closed           bool
}

// NewPool creates a pool with the given capacity (>=1).
func NewPool(capacity int, useMainProcess bool) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(capacity)

	p := &Pool{
		capacity:       capacity,
		useMainProcess: useMainProcess,
		group:          group,
		cancel:         cancel,
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Available returns the number of free slots.
func (p *Pool) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capacity - p.running
}

// Start runs fn, either inline (when exactly one slot is free and
// UseMainProcess is set) or on a pooled goroutine (blocking until a slot
// is free if the pool is saturated). fn receives no arguments; callers
// close over whatever state the job needs, matching spec.md §4.5's
// (fn, args) shape collapsed into a single closure, the idiomatic Go form.
func (p *Pool) Start(fn func()) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	available := p.capacity - p.running
	inline := available == 1 && p.useMainProcess
	p.running++
	p.mu.Unlock()

	if inline {
		fn()
		p.mu.Lock()
		p.running--
		p.finishedUnreaped++
		p.cond.Signal()
		p.mu.Unlock()
		return nil
	}

	p.group.Go(func() error {
		fn()
		p.mu.Lock()
		p.running--
		p.finishedUnreaped++
		p.cond.Signal()
		p.mu.Unlock()
		return nil
	})
	return nil
}

// JoinFinished reaps jobs that have completed since the last call and
// returns how many it reaped, ported from ProcessController.join_finished
// in process_controller.py. If nothing has finished yet but jobs are still
// outstanding, it blocks until at least one does; if nothing is
// outstanding at all it returns 0 immediately. Search loops use this to
// check their stopping condition incrementally as each batch lands,
// rather than waiting for the whole pool to drain.
func (p *Pool) JoinFinished() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.finishedUnreaped == 0 && p.running > 0 {
		p.cond.Wait()
	}
	n := p.finishedUnreaped
	p.finishedUnreaped = 0
	return n
}

// JoinAll waits for every outstanding job to finish and returns the first
// error, if any (none of this package's jobs currently return errors).
func (p *Pool) JoinAll() error {
	return p.group.Wait()
}

// KillAll cancels the pool's context (cooperative: in-flight jobs are
// expected to be short CPU-bound codec runs and are not interrupted
// mid-call, but no further Start calls will accept new work) and waits
// for outstanding goroutines to return.
func (p *Pool) KillAll() error {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
	p.cancel()
	return p.group.Wait()
}
