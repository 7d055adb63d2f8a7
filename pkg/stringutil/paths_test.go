//go:build !integration

package stringutil

import (
	"path/filepath"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "simple path", path: "a/b/c", expected: "a/b/c"},
		{name: "single dot", path: "a/./b", expected: "a/b"},
		{name: "double dot", path: "a/b/../c", expected: "a/c"},
		{name: "empty parts", path: "a//b///c", expected: "a/b/c"},
		{name: "leading double dot dropped", path: "../a/b", expected: "a/b"},
		{name: "empty path", path: "", expected: ""},
		{name: "dots only", path: "./../.", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizePath(tt.path)
			if result != tt.expected {
				t.Errorf("NormalizePath(%q) = %q; want %q", tt.path, result, tt.expected)
			}
		})
	}
}

func TestToSlashRelative(t *testing.T) {
	root := filepath.Join("workspace", "repo")
	path := filepath.Join(root, "device", "foo.ps1")
	if got := ToSlashRelative(root, path); got != "device/foo.ps1" {
		t.Errorf("ToSlashRelative = %q; want %q", got, "device/foo.ps1")
	}
}

func TestHasPathSegment(t *testing.T) {
	tests := []struct {
		path     string
		name     string
		expected bool
	}{
		{path: "device/docs/foo.ps1", name: "docs", expected: true},
		{path: "device/foo.ps1", name: "docs", expected: false},
		{path: "docs/foo.ps1", name: "docs", expected: true},
		{path: "device/mydocs/foo.ps1", name: "docs", expected: false},
		{path: ".github/workflows/ci.yml", name: ".github", expected: true},
	}

	for _, tt := range tests {
		if got := HasPathSegment(tt.path, tt.name); got != tt.expected {
			t.Errorf("HasPathSegment(%q, %q) = %v; want %v", tt.path, tt.name, got, tt.expected)
		}
	}
}
