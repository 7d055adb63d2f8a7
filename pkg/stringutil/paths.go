package stringutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath cleans a forward-slash path: redundant slashes and "."
// segments are removed and ".." segments are resolved. Leading ".."
// segments that would escape the root are dropped rather than preserved,
// since all paths handled by this tool are workspace-relative.
func NormalizePath(path string) string {
	var stack []string
	for _, part := range strings.Split(path, "/") {
		switch part {
		case "", ".":
			continue
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, part)
		}
	}
	return strings.Join(stack, "/")
}

// ToSlashRelative returns path relative to root with forward slashes,
// regardless of the host separator. When path is not under root, the
// cleaned slash form of path itself is returned.
func ToSlashRelative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(filepath.Clean(path))
	}
	return filepath.ToSlash(rel)
}

// HasPathSegment reports whether the slash-separated path contains a
// segment exactly equal to name.
func HasPathSegment(path, name string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == name {
			return true
		}
	}
	return false
}
