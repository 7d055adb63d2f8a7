package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/runbookops/runbook-guard/pkg/constants"
	"github.com/runbookops/runbook-guard/pkg/logger"
	"github.com/runbookops/runbook-guard/pkg/report"
	"github.com/runbookops/runbook-guard/pkg/runner"
)

var auditLog = logger.New("cli:audit_command")

// NewAuditCommand creates the audit command: a sweep over whole scope
// directories that reports every runbook missing a permissions descriptor.
func NewAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <scope>...",
		Short: "Audit runbook scopes for missing permissions descriptors",
		Long: `Audit every runbook under the given scope directories and report the ones
missing a sibling permissions JSON descriptor. All runbooks are checked;
every missing descriptor is reported.

Scopes that do not exist under the workspace root are skipped silently.
Exits 0 when every discovered runbook has a descriptor (or no runbooks were
found), 1 otherwise.

Examples:
  runbook-guard audit device                # Audit one scope
  runbook-guard audit device network        # Audit multiple scopes
  runbook-guard audit device --root ./repo  # Audit against another workspace`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving workspace root: %w", err)
			}

			config, err := LoadConfig(absRoot)
			if err != nil {
				return err
			}

			auditLog.Printf("Running audit: root=%s, scopes=%v", absRoot, args)
			sink := report.NewSink(cmd.OutOrStdout(), constants.AuditAnnotationTitle)
			r := runner.New(absRoot, nil, sink, runner.WithExcludedDirs(config.ExcludedDirs))

			summary, err := r.AuditScopes(cmd.Context(), args)
			if err != nil {
				// Discovery failure: not attributable to one file.
				sink.Failure("", err.Error())
				return err
			}
			if missing := summary.FailedCount(); missing > 0 {
				return fmt.Errorf("%d of %d runbooks are missing a permissions JSON descriptor", missing, summary.Total())
			}
			return nil
		},
	}

	cmd.Flags().String("root", ".", "Workspace root containing the runbook scopes")

	return cmd
}
