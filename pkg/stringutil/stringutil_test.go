//go:build !integration

package stringutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxLen   int
		expected string
	}{
		{name: "shorter than max", s: "hello", maxLen: 10, expected: "hello"},
		{name: "equal to max", s: "hello", maxLen: 5, expected: "hello"},
		{name: "longer than max", s: "hello world", maxLen: 8, expected: "hello..."},
		{name: "max length 3", s: "hello", maxLen: 3, expected: "hel"},
		{name: "max length 1", s: "hello", maxLen: 1, expected: "h"},
		{name: "max length 0", s: "hello", maxLen: 0, expected: ""},
		{name: "empty string", s: "", maxLen: 5, expected: ""},
		{name: "unicode not split mid-rune", s: "héllo wörld", maxLen: 8, expected: "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.s, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q; want %q", tt.s, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{name: "no trailing whitespace", content: "hello\nworld", expected: "hello\nworld\n"},
		{name: "trailing spaces on lines", content: "hello  \nworld  ", expected: "hello\nworld\n"},
		{name: "multiple trailing newlines", content: "hello\nworld\n\n\n", expected: "hello\nworld\n"},
		{name: "empty string", content: "", expected: ""},
		{name: "single newline", content: "\n", expected: ""},
		{name: "no newline at end", content: "hello world", expected: "hello world\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeWhitespace(tt.content)
			if result != tt.expected {
				t.Errorf("NormalizeWhitespace(%q) = %q; want %q", tt.content, result, tt.expected)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		expected string
	}{
		{name: "plain", s: "a b c", expected: "a b c"},
		{name: "runs of spaces", s: "a   b \t c", expected: "a b c"},
		{name: "newlines collapse", s: "a\nb\r\nc", expected: "a b c"},
		{name: "leading and trailing", s: "  a b  ", expected: "a b"},
		{name: "only whitespace", s: " \n\t ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseWhitespace(tt.s); got != tt.expected {
				t.Errorf("CollapseWhitespace(%q) = %q; want %q", tt.s, got, tt.expected)
			}
		})
	}
}

func TestFoldForComparison(t *testing.T) {
	// Synopsis/description duplicate detection must be insensitive to
	// casing and internal whitespace shape.
	a := FoldForComparison("Restarts the  Frobnicator\nservice")
	b := FoldForComparison("restarts the frobnicator service")
	if a != b {
		t.Errorf("folded values differ: %q vs %q", a, b)
	}
}
