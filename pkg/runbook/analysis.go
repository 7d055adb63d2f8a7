package runbook

import (
	"context"
	"fmt"
	"strings"

	"github.com/runbookops/runbook-guard/pkg/analyzer"
	"github.com/runbookops/runbook-guard/pkg/logger"
)

var analysisLog = logger.New("runbook:analysis")

// CheckStaticAnalysis runs the analysis engine against a runbook and fails
// on blocking findings. All severities are requested from the engine and
// classified here; non-blocking findings are discarded silently. An engine
// invocation error becomes a failure for this runbook, not a fatal abort.
func CheckStaticAnalysis(ctx context.Context, engine analyzer.Engine, rb Runbook) *Failure {
	findings, err := engine.Analyze(ctx, rb.Path)
	if err != nil {
		return Failf("%s: static analysis could not run: %v", rb.RelPath, err)
	}

	var blocking []analyzer.Finding
	for _, f := range findings {
		if f.Severity.Blocking() {
			blocking = append(blocking, f)
		}
	}
	analysisLog.Printf("Static analysis: runbook=%s, findings=%d, blocking=%d", rb.RelPath, len(findings), len(blocking))

	if len(blocking) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: static analysis reported %d blocking finding(s):", rb.RelPath, len(blocking))
	for _, f := range blocking {
		if f.Line > 0 {
			fmt.Fprintf(&b, "\n[%s] %s (line %d): %s", f.Severity, f.RuleName, f.Line, f.Message)
		} else {
			fmt.Fprintf(&b, "\n[%s] %s: %s", f.Severity, f.RuleName, f.Message)
		}
	}
	return &Failure{Message: b.String()}
}

// ExtractParameters parses a runbook with the host language parser and
// returns its formally declared parameter names. A runbook without a param
// block yields an empty set; syntax errors fail the runbook.
func ExtractParameters(ctx context.Context, engine analyzer.Engine, rb Runbook) ([]string, *Failure) {
	result, err := engine.Parse(ctx, rb.Path)
	if err != nil {
		return nil, Failf("%s: parsing failed to run: %v", rb.RelPath, err)
	}

	if len(result.Errors) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "%s: parse error(s):", rb.RelPath)
		for _, issue := range result.Errors {
			if issue.Line > 0 {
				fmt.Fprintf(&b, "\nline %d: %s", issue.Line, issue.Message)
			} else {
				fmt.Fprintf(&b, "\n%s", issue.Message)
			}
		}
		return nil, &Failure{Message: b.String()}
	}

	analysisLog.Printf("Extracted parameters: runbook=%s, count=%d", rb.RelPath, len(result.Parameters))
	return result.Parameters, nil
}
