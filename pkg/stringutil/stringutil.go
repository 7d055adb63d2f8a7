// Package stringutil provides small string helpers shared across the tool.
package stringutil

import "strings"

// Truncate shortens s to at most maxLen characters. When truncation occurs
// and maxLen leaves room, the result ends in "..." and is exactly maxLen
// characters long.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// NormalizeWhitespace strips trailing whitespace from every line and
// collapses trailing blank lines, guaranteeing the result ends with exactly
// one newline (or is empty for whitespace-only input).
func NormalizeWhitespace(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	// Drop trailing empty lines
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	if end == 0 {
		return ""
	}
	return strings.Join(lines[:end], "\n") + "\n"
}

// CollapseWhitespace trims s and replaces every run of whitespace
// (including newlines) with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FoldForComparison normalizes s for loose equality checks: whitespace
// collapsed, trimmed, case-folded.
func FoldForComparison(s string) string {
	return strings.ToLower(CollapseWhitespace(s))
}
