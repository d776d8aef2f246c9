package pglob

import "testing"

func TestParsePatternValid(t *testing.T) {
	assert := newAsserter(t)

	cases := []struct {
		pat  string
		segs []string
	}{
		{"a", []string{"a"}},
		{"a/b/c", []string{"a", "b", "c"}},
		{"*.txt", []string{"*.txt"}},
		{"a/**/b", []string{"a", "**", "b"}},
		{"**", []string{"**"}},
		{"a?c/*", []string{"a?c", "*"}},
	}

	for _, c := range cases {
		p, err := parsePattern(c.pat)
		assert(err == nil, "%s: unexpected error: %s", c.pat, err)
		assert(len(p.segments) == len(c.segs), "%s: segment count: got %d want %d", c.pat, len(p.segments), len(c.segs))
		for i := range c.segs {
			assert(p.segments[i] == c.segs[i], "%s: segment %d: got %s want %s", c.pat, i, p.segments[i], c.segs[i])
		}
	}
}

func TestParsePatternInvalid(t *testing.T) {
	assert := newAsserter(t)

	cases := []string{
		"",
		"/abs",
		"a//b",
		"a/./b",
		"a/../b",
		"a**b",
		"**foo",
	}

	for _, pat := range cases {
		_, err := parsePattern(pat)
		assert(err != nil, "%s: expected error, got none", pat)

		var pe *PatternError
		assert(asPatternError(err, &pe), "%s: error is not a *PatternError: %v", pat, err)
	}
}

func TestCountRecursive(t *testing.T) {
	assert := newAsserter(t)

	p, err := parsePattern("a/**/b/**/c")
	assert(err == nil, "unexpected error: %s", err)
	assert(p.countRecursive() == 2, "countRecursive: got %d want 2", p.countRecursive())

	p, err = parsePattern("a/b/c")
	assert(err == nil, "unexpected error: %s", err)
	assert(p.countRecursive() == 0, "countRecursive: got %d want 0", p.countRecursive())
}

func asPatternError(err error, out **PatternError) bool {
	pe, ok := err.(*PatternError)
	if ok {
		*out = pe
	}
	return ok
}
