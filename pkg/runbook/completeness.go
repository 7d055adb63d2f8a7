package runbook

import (
	"github.com/runbookops/runbook-guard/pkg/constants"
	"github.com/runbookops/runbook-guard/pkg/logger"
	"github.com/runbookops/runbook-guard/pkg/stringutil"
)

var completenessLog = logger.New("runbook:completeness")

// CheckDocumentation cross-checks a parsed help header against the declared
// parameter set. The checks run in a fixed order and the first failure is
// returned; later checks are not evaluated for that runbook.
func CheckDocumentation(header *HelpHeader, declared []string, relPath string) *Failure {
	if header.Synopsis.IsEmpty() {
		return Failf("%s: missing or empty .SYNOPSIS section", relPath)
	}
	if header.Description.IsEmpty() {
		return Failf("%s: missing or empty .DESCRIPTION section", relPath)
	}

	synopsis := header.Synopsis.Flatten()
	description := header.Description.Flatten()
	if stringutil.FoldForComparison(synopsis) == stringutil.FoldForComparison(description) {
		// Copy-pasted placeholder help: the synopsis restated as the
		// description documents nothing.
		return Failf("%s: .SYNOPSIS and .DESCRIPTION must differ (synopsis: %q, description: %q)",
			relPath,
			stringutil.Truncate(synopsis, constants.DocValueTruncateLen),
			stringutil.Truncate(description, constants.DocValueTruncateLen))
	}

	for _, param := range declared {
		doc, found := header.ParameterDoc(param)
		if !found {
			return Failf("%s: Missing .PARAMETER section for parameter '%s'", relPath, param)
		}
		if doc.IsEmpty() {
			return Failf("%s: empty .PARAMETER description for parameter '%s'", relPath, param)
		}
	}

	completenessLog.Printf("Documentation complete: runbook=%s, parameters=%d", relPath, len(declared))
	return nil
}
