// Package console provides styled terminal output: consistent message
// prefixes for errors, warnings, and informational lines, plus a table
// renderer for run summaries. Styling degrades to plain text when the
// output stream is not a terminal.
package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runbookops/runbook-guard/pkg/tty"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	verboseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// styled is checked once; piped CI logs get the plain prefixes only.
var styled = tty.IsStdoutTerminal()

func format(style lipgloss.Style, prefix, message string) string {
	line := prefix + message
	if !styled {
		return line
	}
	return style.Render(line)
}

// FormatErrorMessage formats an error message for console output.
func FormatErrorMessage(message string) string {
	return format(errorStyle, "✗ ", message)
}

// FormatWarningMessage formats a warning message for console output.
func FormatWarningMessage(message string) string {
	return format(warningStyle, "! ", message)
}

// FormatInfoMessage formats an informational message for console output.
func FormatInfoMessage(message string) string {
	return format(infoStyle, "ℹ ", message)
}

// FormatSuccessMessage formats a success message for console output.
func FormatSuccessMessage(message string) string {
	return format(successStyle, "✓ ", message)
}

// FormatVerboseMessage formats a low-priority detail line.
func FormatVerboseMessage(message string) string {
	return format(verboseStyle, "  ", message)
}
