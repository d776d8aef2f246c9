package pglob

import "testing"

func TestDedupContext(t *testing.T) {
	assert := newAsserter(t)

	d := newDedupContext()

	assert(d.tryEnter("/a", 1), "first entry for (/a, 1) should succeed")
	assert(!d.tryEnter("/a", 1), "second entry for (/a, 1) should be suppressed")
	assert(d.tryEnter("/a", 2), "entry for (/a, 2) is a distinct state")
	assert(d.tryEnter("/b", 1), "entry for (/b, 1) is a distinct state")
}
