package pglob

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSyncExecutorRunsInline(t *testing.T) {
	assert := newAsserter(t)

	var ran bool
	SyncExecutor{}.Submit(func() { ran = true })
	assert(ran, "SyncExecutor.Submit must run the task before returning")
}

func TestPoolExecutorRunsAllTasks(t *testing.T) {
	assert := newAsserter(t)

	p := NewPoolExecutor(4)
	defer p.Close()

	const n = 200
	var count atomic.Int64
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		p.Submit(func() {
			count.Add(1)
			wg.Done()
		})
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for pool tasks to finish")
	}

	assert(count.Load() == n, "count: got %d want %d", count.Load(), n)
}

func TestPoolExecutorTaskCanSubmitMore(t *testing.T) {
	p := NewPoolExecutor(2)
	defer p.Close()

	var wg sync.WaitGroup
	wg.Add(3)

	p.Submit(func() {
		defer wg.Done()
		p.Submit(func() {
			defer wg.Done()
			p.Submit(func() {
				defer wg.Done()
			})
		})
	})

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for re-entrant submissions to finish")
	}
}
