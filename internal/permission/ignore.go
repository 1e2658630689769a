package permission

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IsIgnored reports whether path matches any of the ignored patterns from
// the configuration. A plain pattern (".git", "node_modules") matches any
// path component with that name; a pattern containing glob metacharacters
// is matched with doublestar against the whole slash-separated path, so
// "**/*.lock" and "vendor/**" work as expected.
func IsIgnored(path string, ignoredPatterns []string) bool {
	clean := filepath.ToSlash(filepath.Clean(path))
	segments := strings.Split(clean, "/")

	for _, pattern := range ignoredPatterns {
		if pattern == "" {
			continue
		}
		if strings.ContainsAny(pattern, "*?[{") {
			if ok, err := doublestar.Match(pattern, clean); err == nil && ok {
				return true
			}
			continue
		}
		for _, segment := range segments {
			if segment == pattern {
				return true
			}
		}
	}
	return false
}
