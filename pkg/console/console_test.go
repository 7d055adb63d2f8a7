//go:build !integration

package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMessages(t *testing.T) {
	// Styling depends on TTY detection; the textual content and prefix
	// must be present either way.
	tests := []struct {
		name   string
		format func(string) string
		prefix string
	}{
		{"error", FormatErrorMessage, "✗"},
		{"warning", FormatWarningMessage, "!"},
		{"info", FormatInfoMessage, "ℹ"},
		{"success", FormatSuccessMessage, "✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.format("something happened")
			assert.Contains(t, out, "something happened")
			assert.Contains(t, out, tt.prefix)
		})
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(TableConfig{
		Title:   "Validation summary",
		Headers: []string{"Runbook", "Result"},
		Rows: [][]string{
			{"device/foo.ps1", "failed"},
			{"network/bar.ps1", "passed"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5, "title, header, separator, two rows")
	assert.Equal(t, "Validation summary", lines[0])
	assert.Contains(t, lines[1], "Runbook")
	assert.Contains(t, lines[1], "Result")
	assert.Contains(t, lines[2], "---")
	assert.Contains(t, lines[3], "device/foo.ps1")

	// Columns align: every row has the separator column at the same offset.
	idx := strings.Index(lines[1], "Result")
	assert.Equal(t, "failed", strings.TrimSpace(lines[3][idx:]))
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(TableConfig{}))
}

func TestRenderTableShortRow(t *testing.T) {
	out := RenderTable(TableConfig{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"only"}},
	})
	assert.Contains(t, out, "only")
}
