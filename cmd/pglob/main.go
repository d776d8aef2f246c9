// main.go - command line driver for the pglob engine
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

// Command pglob runs a parallel glob query against a base directory
// and prints every matching path, one per line.
package main

import (
	"fmt"
	"os"
	"path"
	"sort"
	"time"

	"github.com/opencoff/go-logger"
	"github.com/opencoff/go-pglob"
	"github.com/opencoff/go-utils"
	flag "github.com/opencoff/pflag"
)

var Z = path.Base(os.Args[0])

type config struct {
	base        string
	excludeDirs bool
	concurrency int
	script      string
	showXattr   bool
	xattrKeys   string
	maxSizeStr  string
	maxSize     uint64
	totals      bool
	logStdout   bool
	logLevel    string
}

func main() {
	var cfg config
	var help bool

	fs := flag.NewFlagSet(Z, flag.ExitOnError)

	fs.BoolVarP(&help, "help", "h", false, "Show help and exit [False]")
	fs.StringVarP(&cfg.base, "base", "d", "", "Glob relative to `DIR` [Required]")
	fs.BoolVarP(&cfg.excludeDirs, "exclude-dirs", "x", false, "Omit directories from the result [False]")
	fs.IntVarP(&cfg.concurrency, "concurrency", "c", 0, "Use upto `N` goroutines to traverse [single-threaded]")
	fs.StringVarP(&cfg.script, "script", "s", "", "Read additional patterns from `FILE`")
	fs.BoolVarP(&cfg.showXattr, "show-xattr", "X", false, "Print extended attributes of every match [False]")
	fs.StringVarP(&cfg.xattrKeys, "xattr-key", "", "", "Restrict -X output to a comma-separated list of `KEYS` [all]")
	fs.StringVarP(&cfg.maxSizeStr, "max-size", "m", "", "Omit regular files larger than `SIZE` (e.g. 10M, 1G) from the printed list and totals")
	fs.BoolVarP(&cfg.totals, "totals", "t", false, "Print a summary line with match count and total size [False]")
	fs.BoolVarP(&cfg.logStdout, "log-stdout", "", false, "Put log output on STDOUT instead of STDERR [False]")
	fs.StringVarP(&cfg.logLevel, "log-level", "", "info", "Log at `LEVEL`: debug, info, warn, error")

	fs.SetOutput(os.Stdout)

	if err := fs.Parse(os.Args[1:]); err != nil {
		die("%s", err)
	}
	if help {
		usage(fs)
	}
	if cfg.base == "" {
		die("missing required -d/--base")
	}
	if cfg.maxSizeStr != "" {
		sz, err := utils.ParseSize(cfg.maxSizeStr)
		if err != nil {
			die("-m/--max-size: %s", err)
		}
		cfg.maxSize = sz
	}

	log, err := newLogger(&cfg)
	if err != nil {
		die("logger: %s", err)
	}
	defer log.Close()

	patterns := fs.Args()
	if cfg.script != "" {
		extra, err := readPatternScript(cfg.script)
		if err != nil {
			die("%s", err)
		}
		patterns = append(patterns, extra...)
	}
	if len(patterns) == 0 {
		die("no patterns given: pass them as arguments or via -s/--script")
	}

	opts := []pglob.Option{
		pglob.WithExcludeDirectories(cfg.excludeDirs),
	}

	var pool *pglob.PoolExecutor
	if cfg.concurrency != 0 {
		pool = pglob.NewPoolExecutor(cfg.concurrency)
		defer pool.Close()
		opts = append(opts, pglob.WithExecutor(pool))
	}

	log.Info("glob: base=%s patterns=%v concurrency=%d", cfg.base, patterns, cfg.concurrency)

	start := time.Now()
	results, err := pglob.Glob(cfg.base, patterns, opts...)
	elapsed := time.Since(start)
	if err != nil {
		die("%s", err)
	}

	log.Info("glob: %d matches in %s", len(results), elapsed)

	sort.Strings(results)

	xattrWant := parseXattrKeys(cfg.xattrKeys)

	var nfiles int
	var total uint64
	for _, p := range results {
		fi, err := os.Lstat(p)
		if err == nil && fi.Mode().IsRegular() {
			if cfg.maxSize > 0 && uint64(fi.Size()) > cfg.maxSize {
				continue
			}
			nfiles++
			total += uint64(fi.Size())
		}

		fmt.Println(p)
		if cfg.showXattr {
			printXattr(p, xattrWant, log.Debug)
		}
	}

	if cfg.totals {
		fmt.Printf("%d matches, %d files, %s\n", len(results), nfiles, utils.HumanizeSize(total))
	}
}

func newLogger(cfg *config) (logger.Logger, error) {
	out := os.Stderr
	if cfg.logStdout {
		out = os.Stdout
	}

	lvl := logger.LOG_INFO
	switch cfg.logLevel {
	case "debug":
		lvl = logger.LOG_DEBUG
	case "warn", "warning":
		lvl = logger.LOG_WARNING
	case "error", "err":
		lvl = logger.LOG_ERR
	}

	return logger.NewLogger(out, lvl, Z, logger.Ldate|logger.Ltime|logger.Lmicroseconds)
}

func usage(fs *flag.FlagSet) {
	fmt.Printf(usageStr, Z, Z)
	fs.PrintDefaults()
	os.Exit(0)
}

func die(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", Z, fmt.Sprintf(format, args...))
	os.Exit(1)
}

var usageStr = `%s - parallel glob over a directory tree.

Usage: %s [options] pattern [pattern...]

Patterns use "*", "?" and the recursive "**" segment; see the package
documentation for the exact grammar. Results are printed one per line
in sorted order.

Options:
`
