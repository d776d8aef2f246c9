// accountant.go - work accounting and result/error aggregation
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
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// outcome is the accountant's final, immutable answer.
type outcome struct {
	results  []string
	err      error
	canceled bool
}

// accountant tracks the in-flight task count for a single query,
// collects matched paths, and decides - exactly once - when the query
// is done and what its outcome is.
//
// Every enqueued task must be balanced by exactly one call to
// release(); reserve() and release() together keep the query alive
// for as long as any task could still submit more work. The count
// dropping to zero is the only thing that can trigger completion, so
// a caller must always reserve() before handing a task to an
// Executor, never after.
type accountant struct {
	pending  atomic.Int64
	total    atomic.Int64
	canceled atomic.Bool

	results *xsync.MapOf[string, struct{}]

	errs [3]atomic.Pointer[TraversalError]

	done   sync.Once
	doneCh chan struct{}
	out    outcome
}

func newAccountant() *accountant {
	return &accountant{
		results: xsync.NewMapOf[string, struct{}](),
		doneCh:  make(chan struct{}),
	}
}

// reserve records one more in-flight task and counts it toward the
// query's total. Must be called before the task is handed to an
// Executor.
func (a *accountant) reserve() {
	a.total.Add(1)
	a.pending.Add(1)
}

// release records that one in-flight task has finished. If this was
// the last outstanding task, the query's outcome is finalized and
// wait() is unblocked.
func (a *accountant) release() {
	if a.pending.Add(-1) == 0 {
		a.complete()
	}
}

// skip reports whether the caller should abandon its work without
// doing anything further - the query has been canceled or any error,
// of any severity, has already been recorded. A single bad path
// doesn't stop the rest of the traversal from enqueueing and
// bookkeeping correctly, but once the accountant has something to
// report, further task bodies are moot: the query can't return a
// result anyway, so there's no reason to keep doing I/O for one.
func (a *accountant) skip() bool {
	if a.canceled.Load() {
		return true
	}
	return a.mostSerious() != nil
}

func (a *accountant) cancel() {
	a.canceled.Store(true)
}

// addResult records a matched path. Safe to call concurrently; a path
// recorded more than once (e.g. via two patterns, or a pattern with
// more than one "**") appears only once in the final result.
func (a *accountant) addResult(path string) {
	a.results.Store(path, struct{}{})
}

// reportError records a traversal error at its severity slot. The
// first error seen at a given severity wins; later ones at the same
// severity are dropped, since the accountant only ever needs to
// report the single most serious failure.
func (a *accountant) reportError(err *TraversalError) {
	a.errs[err.Severity].CompareAndSwap(nil, err)
}

// mostSerious returns the highest-severity error recorded so far, or
// nil if none has been.
func (a *accountant) mostSerious() *TraversalError {
	for sev := SeverityFatal; sev >= SeverityIOFailure; sev-- {
		if e := a.errs[sev].Load(); e != nil {
			return e
		}
	}
	return nil
}

// complete finalizes the outcome exactly once. It is safe to call
// from release() when pending reaches zero, and it is also how an
// empty pattern list, which has nothing to traverse, short-circuits
// straight to a finished accountant.
func (a *accountant) complete() {
	a.done.Do(func() {
		switch {
		case a.canceled.Load():
			a.out = outcome{canceled: true}
		case a.mostSerious() != nil:
			a.out = outcome{err: a.mostSerious()}
		default:
			var paths []string
			a.results.Range(func(k string, _ struct{}) bool {
				paths = append(paths, k)
				return true
			})
			a.out = outcome{results: paths}
		}
		close(a.doneCh)
	})
}

// completeWithError finalizes the outcome with err directly, bypassing
// the severity slots. It is used for failures discovered before any
// task was ever reserved, such as an invalid pattern.
func (a *accountant) completeWithError(err error) {
	a.done.Do(func() {
		a.out = outcome{err: err}
		close(a.doneCh)
	})
}

// wait blocks until the query is finished and returns its outcome.
func (a *accountant) wait() outcome {
	<-a.doneCh
	return a.out
}
