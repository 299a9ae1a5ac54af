// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ResolvePath returns the absolute form of path with symlinks resolved.
// If the path does not exist, symlink resolution is skipped and the
// cleaned absolute path is returned instead, so exclusion entries may
// name paths that are not present on disk.
func ResolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return filepath.Clean(abs)
}

// Within reports whether path equals root or is a filesystem descendant
// of root. The test is component-wise: "/a/bee" is not within "/a/b".
// Both arguments must already be absolute and cleaned.
func Within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// HasHiddenComponent reports whether the base name or any directory
// component of path starts with a dot. "." and ".." components are not
// considered hidden.
func HasHiddenComponent(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// Extension returns the lowercased extension of path's base name without
// the leading dot, or "" if the name has none. A leading dot alone does
// not count as an extension, so ".bashrc" has no extension.
func Extension(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(base[idx+1:])
}

// IsFilePath returns true if the string looks like a file path rather
// than a bare name, i.e. it contains a path separator.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// WriteTempFile creates a temporary file with the given content and
// extension. Returns the file path and a cleanup function to remove it.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if extension == "" || strings.ContainsAny(extension, "/\\\x00") {
		return "", nil, fmt.Errorf("invalid temp file extension %q", extension)
	}

	tmpFile, err := os.CreateTemp("", "srcdump-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}
