// Package cli wires the runbook-guard commands: a scope audit and a
// change-range validation, both thin shells around the runner package.
package cli

import "github.com/spf13/cobra"

// NewRootCommand creates the runbook-guard root command.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "runbook-guard",
		Short: "CI governance checks for automation runbooks",
		Long: `runbook-guard enforces repository conventions for automation runbooks:
every runbook carries a sibling permissions JSON descriptor and a complete
comment-based help header, and passes static analysis.

Failures are reported as human-readable log lines plus CI annotations; the
process exit code is the authoritative pass/fail signal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(NewAuditCommand())
	root.AddCommand(NewValidateCommand())

	return root
}
