// builder.go - public entry points
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

// Option configures a Builder.
type Option func(*options)

type options struct {
	excludeDirectories bool
	pathFilter         func(dir string) bool
	executor           Executor
	fsys               FS
}

func defaultOptions() options {
	return options{fsys: DefaultFS{}}
}

// WithExcludeDirectories, when v is true, omits directories from the
// result set: only files (and other non-directory entries) that
// matched every pattern segment are reported.
func WithExcludeDirectories(v bool) Option {
	return func(o *options) { o.excludeDirectories = v }
}

// WithPathFilter installs a predicate consulted before the visitor
// descends into - or reports - any directory. Returning false prunes
// that whole subtree from the traversal, which is cheaper than
// matching into it and discarding the result afterward.
func WithPathFilter(fp func(dir string) bool) Option {
	return func(o *options) { o.pathFilter = fp }
}

// WithExecutor supplies the Executor that dispatches traversal tasks.
// The default is SyncExecutor, which runs the whole query on the
// calling goroutine.
func WithExecutor(e Executor) Option {
	return func(o *options) { o.executor = e }
}

// WithFS supplies the filesystem facade the traversal walks. The
// default is DefaultFS, which talks to the local filesystem via "os".
func WithFS(fsys FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// Builder collects the configuration for a single glob query: a base
// directory, a set of include patterns, and the collaborators that
// control how the traversal is dispatched and filtered.
type Builder struct {
	base     string
	patterns []string
	opt      options
}

// New creates a Builder rooted at base, matching every pattern in
// patterns (the result is their union). base must be a path this
// process can resolve; patterns must be relative - see parsePattern
// for the exact grammar.
func New(base string, patterns []string, opts ...Option) *Builder {
	b := &Builder{
		base:     base,
		patterns: patterns,
		opt:      defaultOptions(),
	}
	for _, fp := range opts {
		fp(&b.opt)
	}
	return b
}

// Glob runs the query to completion and returns the matched absolute
// paths. Order is unspecified and duplicates are never present.
func (b *Builder) Glob() ([]string, error) {
	return b.Start().Wait()
}

// Handle represents an in-flight or completed query.
type Handle struct {
	acct *accountant
}

// Cancel requests best-effort cancellation. Tasks already running
// finish their own bookkeeping but stop doing further traversal work;
// tasks still queued on the Executor observe the cancellation on
// entry and return immediately. Cancel may be called concurrently
// with Wait, and after the query has already finished.
func (h *Handle) Cancel() { h.acct.cancel() }

// Wait blocks until the query finishes and returns its result, or
// ErrCanceled if Cancel won the race, or the most severe
// TraversalError observed during the walk.
func (h *Handle) Wait() ([]string, error) {
	out := h.acct.wait()
	switch {
	case out.canceled:
		return nil, ErrCanceled
	case out.err != nil:
		return nil, out.err
	default:
		return out.results, nil
	}
}

// Start launches the query through the configured Executor and
// returns a Handle. With a concurrent Executor, Start returns while
// the traversal is still running; with the default SyncExecutor the
// whole traversal runs on the calling goroutine before Start returns.
func (b *Builder) Start() *Handle {
	acct := newAccountant()

	if len(b.patterns) == 0 {
		acct.complete()
		return &Handle{acct: acct}
	}

	patterns, err := parsePatterns(b.patterns)
	if err != nil {
		acct.completeWithError(err)
		return &Handle{acct: acct}
	}

	exec := b.opt.executor
	if exec == nil {
		exec = SyncExecutor{}
	}

	q := &query{
		base:               b.base,
		excludeDirectories: b.opt.excludeDirectories,
		pathFilter:         b.opt.pathFilter,
		fsys:               b.opt.fsys,
		exec:               exec,
		acct:               acct,
		segCache:           newSegmentCache(),
	}

	exec.Submit(func() { q.run(patterns) })

	return &Handle{acct: acct}
}

// Glob is a convenience wrapper equivalent to New(base, patterns,
// opts...).Glob().
func Glob(base string, patterns []string, opts ...Option) ([]string, error) {
	return New(base, patterns, opts...).Glob()
}
