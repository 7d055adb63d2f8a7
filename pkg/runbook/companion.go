package runbook

import (
	"path/filepath"
	"strings"

	"github.com/runbookops/runbook-guard/pkg/constants"
	"github.com/runbookops/runbook-guard/pkg/fileutil"
	"github.com/runbookops/runbook-guard/pkg/logger"
)

var companionLog = logger.New("runbook:companion")

// CompanionCandidates returns the two acceptable sibling descriptor paths
// for a runbook, preferred form first.
func CompanionCandidates(path string) (preferred, legacy string) {
	base := strings.TrimSuffix(path, constants.RunbookExtension)
	return base + constants.CompanionSuffix, base + constants.CompanionSuffixLegacy
}

// CheckCompanion verifies that a permissions descriptor exists beside the
// runbook. Either the preferred or the legacy suffix satisfies the check;
// only its existence matters, content is never inspected.
func CheckCompanion(rb Runbook) *Failure {
	preferred, legacy := CompanionCandidates(rb.Path)
	if fileutil.FileExists(preferred) || fileutil.FileExists(legacy) {
		companionLog.Printf("Companion descriptor found: runbook=%s", rb.RelPath)
		return nil
	}

	relPreferred, relLegacy := CompanionCandidates(rb.RelPath)
	companionLog.Printf("Companion descriptor missing: runbook=%s", rb.RelPath)
	return Failf("Missing permissions JSON for %s: expected %s (preferred) or %s",
		rb.RelPath, filepath.ToSlash(relPreferred), filepath.ToSlash(relLegacy))
}
