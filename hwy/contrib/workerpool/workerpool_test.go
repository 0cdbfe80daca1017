// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAtomicAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var count atomic.Int32
	pool.ParallelForAtomic(10, func(int) { count.Add(1) })
	if count.Load() != 10 {
		t.Errorf("count = %d, want 10", count.Load())
	}
}

func TestForEach(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var sum atomic.Int64
	err := pool.ForEach(context.Background(), 50, func(_ context.Context, i int) error {
		sum.Add(int64(i))
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	if sum.Load() != 50*49/2 {
		t.Errorf("sum = %d, want %d", sum.Load(), 50*49/2)
	}
}

func TestForEachError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	boom := errors.New("boom")
	var calls atomic.Int32
	err := pool.ForEach(context.Background(), 1000, func(ctx context.Context, i int) error {
		calls.Add(1)
		if i == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("ForEach error = %v, want %v", err, boom)
	}
	if calls.Load() == 1000 {
		t.Error("ForEach kept claiming indices after an error")
	}
}

func TestForEachCancelled(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls atomic.Int32
	err := pool.ForEach(ctx, 10, func(context.Context, int) error {
		calls.Add(1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ForEach error = %v, want context.Canceled", err)
	}
	if calls.Load() != 0 {
		t.Errorf("calls = %d, want 0", calls.Load())
	}
}
