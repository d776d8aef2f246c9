// doc.go - package overview
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

// Package pglob implements a parallel UNIX-style glob engine.
//
// Given a base directory and one or more include patterns composed of
// literal path segments, "*"/"?" wildcard segments and the recursive
// "**" segment, pglob concurrently walks the filesystem underneath
// base and returns every path that matches any of the patterns. The
// filesystem is accessed through the FS interface rather than
// directly through "os", so callers can point the engine at a virtual
// or remote tree (or a fake, in tests) without touching the traversal
// code.
//
// The traversal itself is dispatched through a caller-supplied
// Executor: a single goroutine, a bounded worker pool, or anything
// else that can run a func(). Tasks submitted to an Executor are free
// to submit further tasks of their own - this is how a directory
// listing fans out into one task per matching subdirectory or
// symlink - so an Executor must not
// assume it has seen the last of the work once its queue looks empty.
//
// Results are collected in a concurrent set keyed by absolute path
// (so a path discovered more than once, for instance via a pattern
// with two "**" segments, is reported once), and errors are
// classified into one of three severities: an I/O failure on a single
// path, a runtime fault in traversal bookkeeping, or a fatal error
// that aborts the whole query. The most severe error observed wins;
// anything less severe that happened along the way is discarded
// rather than aggregated, since a caller asking "did my glob succeed"
// only needs the worst thing that happened.
package pglob
