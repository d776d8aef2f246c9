// xattr.go - optional extended-attribute annotation of matched paths
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

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/xattr"
)

// xattrKeys returns the sorted extended-attribute names set on path. An
// empty, non-nil result means the path has no xattrs; xattr.List
// itself already reports "unsupported" and "not found" as plain
// errors, so the caller decides what to do with those.
func xattrKeys(path string) ([]string, error) {
	keys, err := xattr.List(path)
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

// printXattr prints path's extended attributes as space-separated
// "key=value" pairs on one indented line, restricted to want when it
// is non-empty. Nothing is printed when no pair remains. Errors reading
// xattr (unsupported filesystem, permission denied) are logged and
// otherwise ignored - they must not turn "show me the tags on my
// matches" into a reason to fail the whole query.
func printXattr(path string, want map[string]bool, log func(format string, args ...interface{})) {
	keys, err := xattrKeys(path)
	if err != nil {
		log("xattr %s: %s", path, err)
		return
	}

	var lines []string
	for _, k := range keys {
		if len(want) > 0 && !want[k] {
			continue
		}
		v, err := xattr.Get(path, k)
		if err != nil {
			log("xattr %s %s: %s", path, k, err)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s=%s", k, v))
	}
	if len(lines) == 0 {
		return
	}
	fmt.Printf("  %s\n", strings.Join(lines, " "))
}

// parseXattrKeys turns a comma-separated --xattr-key value into a
// lookup set. An empty string means "no restriction": every key is
// printed.
func parseXattrKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	want := make(map[string]bool)
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			want[k] = true
		}
	}
	return want
}
