// match.go - wildcard segment matching
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
	"regexp"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// segmentCache memoizes the compiled regular expression for each
// distinct wildcard segment seen during a query. A query typically
// revisits the same pattern segment across many directories, so
// compiling it once and sharing the result across goroutines is worth
// the concurrent map.
type segmentCache struct {
	re *xsync.MapOf[string, *regexp.Regexp]
}

func newSegmentCache() *segmentCache {
	return &segmentCache{re: xsync.NewMapOf[string, *regexp.Regexp]()}
}

// matchesSegment reports whether filename matches a single pattern
// segment. seg is never "" and never contains a "/".
//
// The leading-dot rule is checked before anything else, including the
// "**"/"*" shortcut: a bare "*" or "**" does not match a hidden name
// (one starting with ".") unless the pattern segment itself starts
// with a dot, mirroring shell globbing conventions.
func matchesSegment(seg, filename string, cache *segmentCache) bool {
	if seg == "" || filename == "" {
		return false
	}

	if strings.HasPrefix(filename, ".") && !strings.HasPrefix(seg, ".") {
		return false
	}

	if seg == recursiveSegment || seg == "*" {
		return true
	}

	if !strings.ContainsAny(seg, "*?") {
		return seg == filename
	}

	re := compiledSegment(seg, cache)
	return re.MatchString(filename)
}

func compiledSegment(seg string, cache *segmentCache) *regexp.Regexp {
	if re, ok := cache.re.Load(seg); ok {
		return re
	}

	re := regexp.MustCompile(translateSegment(seg))
	re, _ = cache.re.LoadOrStore(seg, re)
	return re
}

// translateSegment turns a "*"/"?" wildcard segment into an anchored
// regular expression. Every other regex metacharacter in seg is
// escaped literally: the only wildcard syntax this engine understands
// is "*" and "?", never character classes or alternation.
func translateSegment(seg string) string {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range seg {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return b.String()
}
