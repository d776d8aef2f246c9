// visitor.go - the glob traversal itself
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

// query holds everything one call to Builder.Start needs to thread
// through the traversal: the collaborators (filesystem, executor,
// accountant) and the options that shape matching.
type query struct {
	base               string
	excludeDirectories bool
	pathFilter         func(dir string) bool
	fsys               FS
	exec               Executor
	acct               *accountant
	segCache           *segmentCache
}

// run is the query's entry point: it resolves the base directory once
// and, for every pattern, enqueues a root traversal task.
func (q *query) run(patterns []*Pattern) {
	// Reserved for the duration of this call so that completion can't
	// fire between resolving the base and enqueueing the first round
	// of per-pattern tasks.
	q.acct.reserve()
	defer q.acct.release()

	attrs, exists, err := q.fsys.Stat(q.base)
	if err != nil {
		q.reportIO("stat", q.base, err)
		return
	}
	if !exists {
		return
	}

	for _, pat := range patterns {
		var dedup *dedupContext
		if pat.countRecursive() > 1 {
			dedup = newDedupContext()
		}
		q.enqueue(q.base, 0, pat, attrs.IsDir, dedup)
	}
}

// enqueue schedules (dir, idx) for pat onto the executor, subject to
// dedup suppression and accountant bookkeeping. Every traversal state
// the visitor discovers, recursive or not, flows through here.
func (q *query) enqueue(dir string, idx int, pat *Pattern, dirIsDir bool, dedup *dedupContext) {
	if dedup != nil && !dedup.tryEnter(dir, idx) {
		return
	}

	q.acct.reserve()
	q.exec.Submit(func() {
		q.visit(dir, idx, pat, dirIsDir, dedup)
	})
}

// visit processes one (dir, idx) traversal state: dir is a path
// resolved so far against pat, idx is how many of pat's segments have
// been consumed, and dirIsDir says whether dir is known to be a
// directory.
func (q *query) visit(dir string, idx int, pat *Pattern, dirIsDir bool, dedup *dedupContext) {
	defer q.acct.release()

	if q.acct.skip() {
		return
	}

	if dirIsDir && q.pathFilter != nil && !q.pathFilter(dir) {
		return
	}

	segs := pat.segments
	if idx == len(segs) {
		if !(q.excludeDirectories && dirIsDir) {
			q.acct.addResult(dir)
		}
		return
	}

	if !dirIsDir {
		return
	}

	seg := segs[idx]
	switch {
	case seg == recursiveSegment:
		// "**" matches zero components: the remainder of the
		// pattern may match starting right here.
		q.enqueue(dir, idx+1, pat, true, dedup)
		// "**" also matches one-or-more components: descend into
		// every child, staying at the same index so a deeper
		// directory can try the zero-components case itself.
		q.visitChildren(dir, idx, pat, dedup)

	case !strings.ContainsAny(seg, "*?"):
		q.visitLiteral(dir, idx, pat, dedup)

	default:
		q.visitChildren(dir, idx, pat, dedup)
	}
}

// visitLiteral resolves dir/seg directly rather than listing dir,
// since a literal segment names at most one child.
func (q *query) visitLiteral(dir string, idx int, pat *Pattern, dedup *dedupContext) {
	seg := pat.segments[idx]
	child := joinPath(dir, seg)

	attrs, exists, err := q.fsys.Stat(child)
	if err != nil {
		q.reportIO("stat", child, err)
		return
	}
	if !exists {
		return
	}

	q.enqueue(child, idx+1, pat, attrs.IsDir, dedup)
}

// visitChildren lists dir and, for every child matching seg, hands it
// to processMatch. This is shared by plain wildcard segments and by
// the "**" one-or-more-components case; in the latter, seg is still
// "**" and matchesSegment treats it as matching every (non-hidden)
// name.
func (q *query) visitChildren(dir string, idx int, pat *Pattern, dedup *dedupContext) {
	seg := pat.segments[idx]

	names, err := q.fsys.List(dir)
	if err != nil {
		q.reportIO("list", dir, err)
		return
	}

	for _, name := range names {
		if q.acct.skip() {
			return
		}

		child := joinPath(dir, name)

		attrs, exists, err := q.fsys.ReadAttributes(child)
		if err != nil {
			q.reportIO("read-attributes", child, err)
			continue
		}
		if !exists || attrs.IsOther {
			continue
		}
		if !matchesSegment(seg, name, q.segCache) {
			continue
		}

		if attrs.IsSymlink {
			q.enqueueSymlinkResolve(child, idx, pat, dedup)
			continue
		}

		q.processMatch(child, attrs.IsDir, idx, pat, dedup)
	}
}

// enqueueSymlinkResolve resolves a symlinked child asynchronously so a
// slow or dangling link doesn't serialize an otherwise-fast directory
// listing. A dangling target is dropped silently: it matched the
// pattern segment by name, but there is nothing behind it to report.
func (q *query) enqueueSymlinkResolve(link string, idx int, pat *Pattern, dedup *dedupContext) {
	q.acct.reserve()
	q.exec.Submit(func() {
		defer q.acct.release()

		if q.acct.skip() {
			return
		}

		attrs, exists, err := q.fsys.Stat(link)
		if err != nil {
			q.reportIO("stat-symlink", link, err)
			return
		}
		if !exists || attrs.IsOther {
			return
		}

		q.processMatch(link, attrs.IsDir, idx, pat, dedup)
	})
}

// processMatch handles a path that has just matched segments[idx]. A
// directory advances the traversal - to idx+1 normally, or staying at
// idx if the matched segment was the recursive one, so "**" can
// continue consuming components. A non-directory only contributes a
// result if the matched segment was the pattern's last.
func (q *query) processMatch(path string, isDir bool, idx int, pat *Pattern, dedup *dedupContext) {
	segs := pat.segments
	if isDir {
		nextIdx := idx + 1
		if segs[idx] == recursiveSegment {
			nextIdx = idx
		}
		q.enqueue(path, nextIdx, pat, true, dedup)
		return
	}

	if idx+1 == len(segs) {
		q.acct.addResult(path)
	}
}

func (q *query) reportIO(op, path string, err error) {
	q.acct.reportError(&TraversalError{Op: op, Path: path, Severity: SeverityIOFailure, Err: err})
}

func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
