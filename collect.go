package srcdump

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/alnah/go-srcdump/internal/fileutil"
)

// Collector gathers candidate file paths from root inputs.
//
// A root naming a regular file contributes that file alone, bypassing the
// suffix filter. A root naming a directory is scanned recursively; with a
// non-empty suffix set only entries whose lowercased extension is in the
// set are kept, otherwise every entry is kept (directories included, the
// renderer drops them later). A root naming neither is reported on the
// diagnostic stream and skipped.
type Collector struct {
	// Suffixes filters directory scans by lowercased extension (no dot).
	// Empty means no filtering.
	Suffixes []string

	// Excludes holds files or directories to drop, together with
	// anything nested under them. Entries may be relative. The test is
	// component-wise, so excluding "build" never drops "build2".
	Excludes []string

	// UseGitignore drops entries matched by a root's .gitignore during
	// directory scans. Off by default.
	UseGitignore bool

	// Diag receives per-root diagnostics. Nil discards them.
	Diag io.Writer
}

// Collect returns the candidate files for all roots, in root argument
// order with each root's contribution sorted lexicographically.
func (c *Collector) Collect(roots []string) []string {
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var candidates []string
	for _, root := range roots {
		candidates = append(candidates, c.collectRoot(root)...)
	}
	return candidates
}

// collectRoot gathers one root's contribution.
func (c *Collector) collectRoot(root string) []string {
	switch {
	case fileutil.FileExists(root):
		if c.excluded(root) {
			return nil
		}
		return []string{root}
	case fileutil.DirExists(root):
		return c.scanDir(root)
	default:
		c.diagf("Error: %s does not exist.\n", root)
		return nil
	}
}

// scanDir enumerates a directory recursively, applying the suffix filter
// and the exclusion set. The walk itself keeps going on per-entry errors;
// unreadable subtrees surface later as per-file render diagnostics.
func (c *Collector) scanDir(root string) []string {
	matcher := c.ignoreMatcher(root)

	seen := make(map[string]struct{})
	var paths []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.diagf("Error: cannot access %s: %v\n", path, err)
			return nil
		}
		if path == root {
			return nil
		}
		if matcher != nil && matcher.Match(path, d.IsDir()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if len(c.Suffixes) > 0 && !c.suffixMatch(path, d) {
			return nil
		}
		if c.excluded(path) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if _, dup := seen[path]; dup {
			return nil
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
		return nil
	})

	sort.Strings(paths)
	return paths
}

// suffixMatch reports whether a walked entry passes the suffix filter.
// Directories never match a non-empty filter; they are still descended
// into by the walk.
func (c *Collector) suffixMatch(path string, d fs.DirEntry) bool {
	if d.IsDir() {
		return false
	}
	ext := fileutil.Extension(path)
	for _, suffix := range c.Suffixes {
		if ext == suffix {
			return true
		}
	}
	return false
}

// excluded reports whether path falls under any exclusion entry.
// Both sides are resolved so symlinked temp dirs and relative entries
// compare on equal footing.
func (c *Collector) excluded(path string) bool {
	if len(c.Excludes) == 0 {
		return false
	}
	resolved := fileutil.ResolvePath(path)
	for _, entry := range c.Excludes {
		if fileutil.Within(resolved, fileutil.ResolvePath(entry)) {
			return true
		}
	}
	return false
}

// ignoreMatcher loads the root's .gitignore when enabled, nil otherwise.
func (c *Collector) ignoreMatcher(root string) gitignore.IgnoreMatcher {
	if !c.UseGitignore {
		return nil
	}
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	matcher, err := gitignore.NewGitIgnore(path)
	if err != nil {
		c.diagf("Error: cannot parse %s: %v\n", path, err)
		return nil
	}
	return matcher
}

func (c *Collector) diagf(format string, args ...any) {
	if c.Diag != nil {
		fmt.Fprintf(c.Diag, format, args...)
	}
}
