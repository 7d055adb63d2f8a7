// Package constants holds the fixed string contracts of the runbook tree:
// file extensions, companion descriptor suffixes, excluded directory names,
// and the CI annotation titles. These are external contracts; changing them
// breaks existing repositories and CI log renderers.
package constants

// RunbookExtension marks a file as a runbook. Matched case-sensitively
// by exact trailing-substring equality on the base filename.
const RunbookExtension = ".ps1"

// Companion descriptor suffixes. The plural form is the preferred
// spelling; the singular form is a legacy alternate still accepted.
const (
	CompanionSuffix       = ".permissions.json"
	CompanionSuffixLegacy = ".permission.json"
)

// Directory names whose subtrees never contain runbooks, even when they
// sit inside a scope. DocsDirName holds human documentation; CIMetadataDirName
// holds pipeline definitions.
const (
	DocsDirName       = "docs"
	CIMetadataDirName = ".github"
)

// Annotation titles, one per invocation profile. Fixed contract with the
// CI log UI.
const (
	AuditAnnotationTitle    = "Permissions JSON validation failed"
	ValidateAnnotationTitle = "Runbook validation failed"
)

// DefaultAnalyzerExecutable is the PowerShell host used to parse runbooks
// and run PSScriptAnalyzer when no override is given.
const DefaultAnalyzerExecutable = "pwsh"

// AnalyzerEnvVar overrides the analyzer executable when set.
const AnalyzerEnvVar = "RUNBOOK_GUARD_ANALYZER"

// ConfigFileName is the optional repo-level configuration file read from
// the workspace root.
const ConfigFileName = ".runbook-guard.yml"

// DocValueTruncateLen bounds the synopsis/description text echoed into
// duplicate-documentation failure messages.
const DocValueTruncateLen = 240
