package runbook

import (
	"encoding/json"
	"strings"

	"github.com/runbookops/runbook-guard/pkg/stringutil"
)

// HelpText is a documentation value that arrives either as a plain string
// or as structured multi-line content. Exactly one representation is set;
// Flatten collapses either into a single string before use.
type HelpText struct {
	plain      string
	lines      []string
	structured bool
}

// PlainText wraps a single-string documentation value.
func PlainText(s string) HelpText {
	return HelpText{plain: s}
}

// StructuredText wraps multi-line documentation content.
func StructuredText(lines []string) HelpText {
	return HelpText{lines: lines, structured: true}
}

// Flatten collapses either representation into one trimmed string.
// Structured lines are joined with newlines; per-line trailing whitespace
// is dropped so the two representations of the same text flatten equally.
func (h HelpText) Flatten() string {
	if !h.structured {
		return strings.TrimSpace(h.plain)
	}
	joined := strings.Join(h.lines, "\n")
	return strings.TrimSpace(stringutil.NormalizeWhitespace(joined))
}

// IsEmpty reports whether the flattened text is empty.
func (h HelpText) IsEmpty() bool {
	return h.Flatten() == ""
}

// UnmarshalJSON accepts both shapes help tooling emits: "text" and
// ["line1", "line2"].
func (h *HelpText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*h = PlainText(s)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	*h = StructuredText(lines)
	return nil
}
