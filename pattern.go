// pattern.go - include pattern validation and segmentation
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

import "strings"

// recursiveSegment is the sentinel path segment that enables matching
// across zero or more intervening directory components.
const recursiveSegment = "**"

// Pattern is a validated, split include pattern: a slash-separated
// list of path segments, each either a literal name, a "*"/"?"
// wildcard, or the recursive "**" segment.
type Pattern struct {
	raw      string
	segments []string
}

// String returns the original pattern text.
func (p *Pattern) String() string { return p.raw }

// countRecursive returns the number of "**" segments in the pattern.
func (p *Pattern) countRecursive() int {
	n := 0
	for _, s := range p.segments {
		if s == recursiveSegment {
			n++
		}
	}
	return n
}

// parsePatterns validates and splits every pattern in pats, in order,
// and aborts on the first invalid one - a bad pattern is a caller
// programming error, not a traversal failure, so it is never worth
// partially honoring the request.
func parsePatterns(pats []string) ([]*Pattern, error) {
	out := make([]*Pattern, 0, len(pats))
	for _, raw := range pats {
		p, err := parsePattern(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// parsePattern validates a single pattern and splits it into segments.
//
// A pattern must be relative: it may not start with "/", and it may
// not contain "." or ".." as a standalone segment - those only make
// sense relative to a caller's current directory, and this engine
// only ever resolves patterns relative to an explicit base. A "**"
// segment must appear alone in its slash-delimited slot; something
// like "a**b" or "**foo" is rejected rather than silently treated as
// a literal or a single-star wildcard, since a caller who wrote it
// almost certainly meant the recursive form and got the syntax wrong.
func parsePattern(raw string) (*Pattern, error) {
	if raw == "" {
		return nil, &PatternError{Pattern: raw, Reason: "empty pattern"}
	}
	if strings.HasPrefix(raw, "/") {
		return nil, &PatternError{Pattern: raw, Reason: "absolute patterns are not supported"}
	}

	segs := strings.Split(raw, "/")
	for _, s := range segs {
		switch {
		case s == "":
			return nil, &PatternError{Pattern: raw, Reason: "empty path segment"}
		case s == ".":
			return nil, &PatternError{Pattern: raw, Reason: `"." segments are not supported`}
		case s == "..":
			return nil, &PatternError{Pattern: raw, Reason: `".." segments are not supported`}
		case strings.Contains(s, "**") && s != recursiveSegment:
			return nil, &PatternError{Pattern: raw, Reason: `"**" must appear alone in its segment`}
		}
	}

	return &Pattern{raw: raw, segments: segs}, nil
}
