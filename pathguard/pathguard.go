package pathguard

import (
	"os"
	"path/filepath"
	"strings"
)

// Canonicalize returns the absolute, symlink-resolved form of path.
// Paths that do not exist yet are resolved against their deepest
// existing ancestor, so a directory that will be created later still
// compares correctly against the configured roots.
func Canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}

	// Walk up to the closest existing ancestor, resolve that, then
	// reattach the remaining components unchanged.
	dir := abs
	var rest []string
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		rest = append(rest, filepath.Base(dir))
		dir = parent
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			dir = resolved
			break
		}
	}
	for i := len(rest) - 1; i >= 0; i-- {
		dir = filepath.Join(dir, rest[i])
	}
	return dir
}

// IsSubpath reports whether path equals parent or sits nested under it.
// Both operands are canonicalized first. The comparison only matches on
// directory boundaries: /home/ab is not a child of /home/a.
func IsSubpath(path, parent string) bool {
	pathReal := Canonicalize(path)
	parentReal := Canonicalize(parent)

	if pathReal == parentReal {
		return true
	}

	parentWithSep := strings.TrimRight(parentReal, string(os.PathSeparator)) + string(os.PathSeparator)
	return strings.HasPrefix(pathReal, parentWithSep)
}

// SafeFilename reports whether name is acceptable as a bare file name:
// non-blank, no path separators, no traversal segments.
func SafeFilename(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return false
	}
	return true
}
