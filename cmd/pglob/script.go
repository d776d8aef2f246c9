// script.go - batch pattern files
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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/opencoff/shlex"
)

// readPatternScript reads additional include patterns from fn, one
// "line" of shell-quoted patterns per physical line. Blank lines and
// lines whose first non-blank character is '#' are ignored, so a
// script can be commented the way a shell script can be:
//
//	# top level sources
//	"**/*.go" "**/*.proto"
//	# generated artifacts
//	"**/*.pb.go"
func readPatternScript(fn string) ([]string, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("pattern script %s: %w", fn, err)
	}
	defer fd.Close()

	var pats []string
	sc := bufio.NewScanner(fd)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		toks, err := shlex.Split(line)
		if err != nil {
			return nil, fmt.Errorf("pattern script %s:%d: %w", fn, lineno, err)
		}
		pats = append(pats, toks...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pattern script %s: %w", fn, err)
	}
	return pats, nil
}
