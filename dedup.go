// dedup.go - subtask dedup for patterns with multiple recursive segments
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
	"strconv"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// dedupContext suppresses duplicate (directory, segment-index)
// traversal states. It is only needed for a pattern with more than
// one "**" segment: such a pattern can reach the same directory at
// the same point in the pattern via more than one recursive path
// (e.g. "a/**/b/**/c" reaching a given directory having consumed the
// first "**" by zero components and the second by several, or vice
// versa), and without suppression the subtree under it would be
// walked once per distinct arrival.
type dedupContext struct {
	seen *xsync.MapOf[string, struct{}]
}

func newDedupContext() *dedupContext {
	return &dedupContext{seen: xsync.NewMapOf[string, struct{}]()}
}

// tryEnter reports whether (dir, idx) is newly recorded. A false
// result means this exact state has already been scheduled and the
// caller must not enqueue it again.
func (d *dedupContext) tryEnter(dir string, idx int) bool {
	key := dedupKey(dir, idx)
	_, loaded := d.seen.LoadOrStore(key, struct{}{})
	return !loaded
}

func dedupKey(dir string, idx int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(idx))
	b.WriteByte('\x00')
	b.WriteString(dir)
	return b.String()
}
