// Package fileutil provides file path validation and existence checks.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ValidateAbsolutePath cleans path and verifies it is absolute. Every file
// operation in this tool goes through an absolute path so that relative
// lookups can never drift away from the workspace root.
func ValidateAbsolutePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("path cannot be empty")
	}
	cleanPath := filepath.Clean(path)
	if !filepath.IsAbs(cleanPath) {
		return "", fmt.Errorf("path must be absolute, got: %s", path)
	}
	return cleanPath, nil
}

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
