// fs.go - filesystem facade
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
	"errors"
	"os"
)

// Attrs holds the subset of file metadata the traversal needs to
// classify an entry. Exactly one of IsDir, IsRegular, IsSymlink or
// IsOther is true.
type Attrs struct {
	IsDir     bool
	IsRegular bool
	IsSymlink bool
	IsOther   bool
}

// FS decouples the traversal from "os" so callers can point it at a
// virtual tree, a remote filesystem, or a fake in tests.
//
// Stat resolves symlinks: it describes whatever a path ultimately
// refers to, and so never reports IsSymlink. ReadAttributes does not
// resolve symlinks: it describes the directory entry itself, which is
// how a symlink encountered while listing a directory is recognized
// for asynchronous resolution rather than being followed inline.
//
// Both methods report absence via the second return value rather than
// a sentinel error: a missing path is an ordinary, expected outcome
// during a concurrent tree walk (entries come and go), not a failure
// worth routing through error aggregation.
type FS interface {
	// Stat resolves path, following symlinks.
	Stat(path string) (attrs Attrs, exists bool, err error)

	// ReadAttributes describes path without following a trailing
	// symlink.
	ReadAttributes(path string) (attrs Attrs, exists bool, err error)

	// List returns the names of path's direct children, in no
	// particular order. A path that no longer exists by the time it
	// is listed yields (nil, nil): the directory vanished mid-walk,
	// which is not an error worth reporting any more than a vanished
	// leaf is.
	List(path string) ([]string, error)
}

// DefaultFS implements FS directly against the local filesystem using
// "os".
type DefaultFS struct{}

var _ FS = DefaultFS{}

func (DefaultFS) Stat(path string) (Attrs, bool, error) {
	fi, err := os.Stat(path)
	return statResult(fi, err)
}

func (DefaultFS) ReadAttributes(path string) (Attrs, bool, error) {
	fi, err := os.Lstat(path)
	return statResult(fi, err)
}

func (DefaultFS) List(path string) ([]string, error) {
	d, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	return names, nil
}

func statResult(fi os.FileInfo, err error) (Attrs, bool, error) {
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Attrs{}, false, nil
		}
		return Attrs{}, false, err
	}

	mode := fi.Mode()
	a := Attrs{
		IsDir:     mode.IsDir(),
		IsRegular: mode.IsRegular(),
		IsSymlink: mode&os.ModeSymlink != 0,
	}
	a.IsOther = !a.IsDir && !a.IsRegular && !a.IsSymlink
	return a, true, nil
}
