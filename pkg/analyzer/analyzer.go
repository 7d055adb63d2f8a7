// Package analyzer defines the static-analysis boundary for runbooks: a
// small engine interface that parses a runbook into its declared parameters
// and reports analysis findings. The production engine shells out to
// PowerShell (PSScriptAnalyzer); tests inject fakes so validation logic
// never depends on the engine being installed.
package analyzer

import "context"

// Severity classifies an analysis finding. Error and ParseError block
// validation; everything else is advisory and ignored by this tool.
type Severity string

const (
	SeverityError       Severity = "Error"
	SeverityParseError  Severity = "ParseError"
	SeverityWarning     Severity = "Warning"
	SeverityInformation Severity = "Information"
)

// Blocking reports whether a finding of this severity fails validation.
func (s Severity) Blocking() bool {
	return s == SeverityError || s == SeverityParseError
}

// Finding is one static-analysis result for a runbook.
type Finding struct {
	Severity Severity `json:"severity"`
	RuleName string   `json:"ruleName"`
	Line     int      `json:"line,omitempty"`
	Message  string   `json:"message"`
}

// ParseIssue is one syntax error reported by the host language parser.
type ParseIssue struct {
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

// ParseResult is the outcome of parsing a runbook with the host language
// parser: the formally declared parameter names (empty when the runbook
// has no param block, which is valid) and any syntax errors.
type ParseResult struct {
	Parameters []string     `json:"parameters"`
	Errors     []ParseIssue `json:"errors"`
}

// Engine is the injected parser/linter dependency. Both methods operate on
// one runbook path; implementations run synchronously and return an error
// only for invocation-level problems (the subprocess failed, its output
// was unparsable), never for findings in the runbook itself.
type Engine interface {
	Parse(ctx context.Context, path string) (*ParseResult, error)
	Analyze(ctx context.Context, path string) ([]Finding, error)
}
