// Package runbook implements the per-runbook validation checks: companion
// descriptor presence, comment-based help parsing, and documentation
// completeness, plus discovery of runbooks under scope directories.
package runbook

import "fmt"

// Runbook identifies one automation script discovered on disk. Paths are
// fixed at discovery time; the relative path is forward-slash normalized
// and used in every message and annotation.
type Runbook struct {
	// Path is the absolute path used for filesystem and subprocess access.
	Path string
	// RelPath is the workspace-relative path used in reports.
	RelPath string
}

// Failure is one validation failure for one runbook. Checks return a nil
// *Failure on success; the orchestrator branches on the value instead of
// unwinding, which keeps the per-file fail-fast policy an explicit branch.
type Failure struct {
	Message string
}

// Failf constructs a Failure from a format string.
func Failf(format string, args ...any) *Failure {
	return &Failure{Message: fmt.Sprintf(format, args...)}
}

func (f *Failure) String() string {
	if f == nil {
		return ""
	}
	return f.Message
}
