package pglob

import "testing"

func TestAccountantResults(t *testing.T) {
	assert := newAsserter(t)

	a := newAccountant()
	a.reserve()
	a.addResult("/a")
	a.addResult("/b")
	a.addResult("/a") // duplicate, collapses
	a.release()

	out := a.wait()
	assert(out.err == nil, "unexpected error: %s", out.err)
	assert(!out.canceled, "unexpectedly canceled")
	assert(len(out.results) == 2, "results: got %d want 2: %v", len(out.results), out.results)
}

func TestAccountantSeverityPrecedence(t *testing.T) {
	assert := newAsserter(t)

	a := newAccountant()
	a.reserve()
	a.reportError(&TraversalError{Op: "stat", Severity: SeverityIOFailure})
	a.reportError(&TraversalError{Op: "fatal", Severity: SeverityFatal})
	a.reportError(&TraversalError{Op: "stat2", Severity: SeverityIOFailure})
	a.release()

	out := a.wait()
	assert(out.err != nil, "expected an error")
	te, ok := out.err.(*TraversalError)
	assert(ok, "error is not a *TraversalError: %v", out.err)
	assert(te.Op == "fatal", "expected fatal error to win, got op=%s", te.Op)
}

func TestAccountantCancel(t *testing.T) {
	assert := newAsserter(t)

	a := newAccountant()
	a.reserve()
	a.cancel()
	a.release()

	out := a.wait()
	assert(out.canceled, "expected canceled outcome")
}

func TestAccountantCompleteWithError(t *testing.T) {
	assert := newAsserter(t)

	a := newAccountant()
	a.completeWithError(&PatternError{Pattern: "x", Reason: "bad"})

	out := a.wait()
	assert(out.err != nil, "expected an error")
}
