// executor.go - task dispatch
//
// (c) 2024 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package pglob

import (
	"runtime"
	"sync"
)

// Executor dispatches units of traversal work. An implementation may
// run a task synchronously on the submitting goroutine, hand it to a
// single background goroutine, or spread it across a pool; the engine
// makes no assumption about ordering or concurrency between submitted
// tasks.
//
// A task is free to call Submit again from within its own body - this
// is how the visitor turns one directory listing into many further
// tasks - so an Executor must accept submissions for as long as any
// earlier task might still be running, not just up front.
type Executor interface {
	Submit(task func())
}

// SyncExecutor runs every task synchronously on the submitting
// goroutine. It is the Builder's default when no Executor is
// supplied: the whole traversal then proceeds single-threaded and
// deterministically, which is convenient for tests and for small
// trees where the dispatch overhead of a pool isn't worth paying.
type SyncExecutor struct{}

func (SyncExecutor) Submit(task func()) { task() }

var _ Executor = SyncExecutor{}

// PoolExecutor runs tasks across a fixed number of goroutines. Unlike
// a channel-based worker pool that must be closed before it can be
// waited on, a PoolExecutor's intake never closes on its own: a
// running task must be able to Submit further tasks for as long as
// the pool is alive, since the visitor discovers new directories to
// descend into from inside the tasks that are already running.
type PoolExecutor struct {
	tasks chan func()
	quit  chan struct{}
	once  sync.Once
}

var _ Executor = &PoolExecutor{}

// NewPoolExecutor starts a pool of concurrency goroutines, each
// pulling tasks off a shared queue. concurrency <= 0 defaults to
// runtime.NumCPU().
func NewPoolExecutor(concurrency int) *PoolExecutor {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	p := &PoolExecutor{
		tasks: make(chan func(), concurrency*4),
		quit:  make(chan struct{}),
	}
	for i := 0; i < concurrency; i++ {
		go p.worker()
	}
	return p
}

func (p *PoolExecutor) worker() {
	for {
		select {
		case t := <-p.tasks:
			t()
		case <-p.quit:
			return
		}
	}
}

// Submit enqueues task. If the intake buffer is momentarily full,
// Submit hands off to a helper goroutine instead of blocking the
// caller - the caller may itself be a pool worker, and blocking it
// while it holds a worker slot would starve the very pool it is
// waiting on.
func (p *PoolExecutor) Submit(task func()) {
	select {
	case p.tasks <- task:
	default:
		go func() { p.tasks <- task }()
	}
}

// Close stops the pool's worker goroutines. It must only be called
// once the caller knows no further tasks will be submitted, typically
// after a query's Handle has finished waiting.
func (p *PoolExecutor) Close() {
	p.once.Do(func() { close(p.quit) })
}
