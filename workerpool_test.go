// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/buffercodec

package buffercodec

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoolRunsAllJobs(t *testing.T) {
	pool := NewPool(4, true)

	var count int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		err := pool.Start(func() {
			defer wg.Done()
			atomic.AddInt32(&count, 1)
			time.Sleep(time.Millisecond)
		})
		require.NoError(t, err)
	}
	require.NoError(t, pool.JoinAll())
	wg.Wait()

	require.EqualValues(t, 50, count)
}

func TestPoolCapacityOneIsSequential(t *testing.T) {
	pool := NewPool(1, false)

	var active int32
	var maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		err := pool.Start(func() {
			defer wg.Done()
			n := atomic.AddInt32(&active, 1)
			for {
				cur := atomic.LoadInt32(&maxActive)
				if n <= cur || atomic.CompareAndSwapInt32(&maxActive, cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&active, -1)
		})
		require.NoError(t, err)
	}
	require.NoError(t, pool.JoinAll())
	wg.Wait()

	require.EqualValues(t, 1, maxActive, "capacity-1 pool must never run two jobs concurrently")
}

func TestPoolAvailable(t *testing.T) {
	pool := NewPool(2, false)
	require.Equal(t, 2, pool.Available())

	release := make(chan struct{})
	started := make(chan struct{})
	err := pool.Start(func() {
		close(started)
		<-release
	})
	require.NoError(t, err)

	<-started
	require.Eventually(t, func() bool { return pool.Available() == 1 }, time.Second, time.Millisecond)

	close(release)
	require.NoError(t, pool.JoinAll())
	require.Equal(t, 2, pool.Available())
}

func TestPoolStartAfterKillAllIsRejected(t *testing.T) {
	pool := NewPool(2, false)
	require.NoError(t, pool.KillAll())

	err := pool.Start(func() {})
	require.ErrorIs(t, err, ErrPoolClosed)
}

func TestPoolJoinFinishedReturnsZeroWhenIdle(t *testing.T) {
	pool := NewPool(2, false)
	require.Equal(t, 0, pool.JoinFinished(), "nothing submitted, nothing outstanding")
}

func TestPoolJoinFinishedReapsCompletedJobs(t *testing.T) {
	pool := NewPool(3, false)

	release := make(chan struct{})
	for i := 0; i < 3; i++ {
		require.NoError(t, pool.Start(func() {
			<-release
		}))
	}
	close(release)

	reaped := pool.JoinFinished()
	require.Greater(t, reaped, 0, "JoinFinished must block until at least one outstanding job completes")

	require.NoError(t, pool.JoinAll())
	require.Equal(t, 3-reaped, pool.JoinFinished(), "a second call reaps exactly the jobs that finished after the first call")
}

func TestPoolJoinFinishedAccumulatesBetweenCalls(t *testing.T) {
	pool := NewPool(1, true)

	total := 0
	for i := 0; i < 5; i++ {
		require.NoError(t, pool.Start(func() {}))
		total += pool.JoinFinished()
	}
	require.Equal(t, 5, total, "every completed inline job must be reaped exactly once across the five calls")
}
