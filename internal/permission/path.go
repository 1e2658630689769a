package permission

import (
	"os"
	"path/filepath"
	"strings"
)

// IsPathAccessible reports whether path may be touched given the configured
// accessible roots. It returns nil when the path is equal to, or a
// descendant of, any root.
//
// For a path that does not exist yet, the check falls back to its parent
// directory, so permission to create a new file is judged by where it would
// be created. A bare filename resolves against the working directory.
//
// Roots that cannot be canonicalized themselves are skipped: an unreachable
// root grants no access but does not fail the whole check.
func IsPathAccessible(path string, accessibleRoots []string) error {
	target := path
	if _, err := os.Stat(path); err != nil {
		parent := filepath.Dir(path)
		if parent == path {
			return &NoParentDirectoryError{Path: path}
		}
		// filepath.Dir maps a bare filename to ".", the working directory.
		target = parent
	}

	resolved, err := canonicalize(target)
	if err != nil {
		return &PathResolutionError{Path: target, Err: err}
	}

	for _, root := range accessibleRoots {
		resolvedRoot, err := canonicalize(root)
		if err != nil {
			continue
		}
		if isWithin(resolved, resolvedRoot) {
			return nil
		}
	}
	return &NotAccessibleError{Path: path, Roots: accessibleRoots}
}

// canonicalize is the single place paths are resolved to their absolute,
// symlink-free form. Guards only ever compare canonical paths: raw string
// comparison would let ../ traversal or symlinks escape the roots.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// isWithin reports whether path equals root or descends from it. The test
// is segment-wise, so a root /tmp/ab never matches /tmp/abc.
func isWithin(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
