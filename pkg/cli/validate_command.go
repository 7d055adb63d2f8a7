package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/runbookops/runbook-guard/pkg/analyzer"
	"github.com/runbookops/runbook-guard/pkg/constants"
	"github.com/runbookops/runbook-guard/pkg/logger"
	"github.com/runbookops/runbook-guard/pkg/report"
	"github.com/runbookops/runbook-guard/pkg/runner"
)

var validateLog = logger.New("cli:validate_command")

// NewValidateCommand creates the validate command: the PR gate over
// runbooks changed between two revisions.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <base-ref> <head-ref>",
		Short: "Validate runbooks changed between two revisions",
		Long: `Validate every runbook added or modified between two revisions. Each
changed runbook is checked in order: permissions descriptor present, static
analysis clean, documentation header complete. The first failing check
stops further checks for that runbook; remaining runbooks are still
validated.

When the head revision is a merge commit, the diff range is redefined to
the true pre-merge base against the incoming branch tip, so unrelated
upstream changes never enter the validation set.

Exits 0 when every changed runbook passes (or nothing changed), 1 otherwise.

Examples:
  runbook-guard validate origin/main HEAD
  runbook-guard validate abc123 def456 --root ./repo
  runbook-guard validate origin/main HEAD --analyzer /usr/bin/pwsh`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, head := args[0], args[1]
			root, _ := cmd.Flags().GetString("root")
			analyzerFlag, _ := cmd.Flags().GetString("analyzer")

			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving workspace root: %w", err)
			}

			config, err := LoadConfig(absRoot)
			if err != nil {
				return err
			}

			executable := ResolveAnalyzer(analyzerFlag, config)
			validateLog.Printf("Running validate: root=%s, base=%s, head=%s, analyzer=%s", absRoot, base, head, executable)

			sink := report.NewSink(cmd.OutOrStdout(), constants.ValidateAnnotationTitle)
			engine := analyzer.NewPowerShellEngine(executable)
			r := runner.New(absRoot, engine, sink, runner.WithExcludedDirs(config.ExcludedDirs))

			summary, err := r.ValidateChanges(cmd.Context(), base, head)
			if err != nil {
				// Revision or discovery failure: not attributable to one file.
				sink.Failure("", err.Error())
				return err
			}
			if failed := summary.FailedCount(); failed > 0 {
				return fmt.Errorf("%d of %d changed runbooks failed validation", failed, summary.Total())
			}
			return nil
		},
	}

	cmd.Flags().String("root", ".", "Workspace root containing the runbook tree")
	cmd.Flags().StringP("analyzer", "a", "", "PowerShell executable for parsing and static analysis (default: pwsh)")

	return cmd
}
