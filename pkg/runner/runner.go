// Package runner orchestrates validation runs: discovery, the per-runbook
// check battery, and outcome aggregation. Two profiles exist with
// deliberately different shapes: the scope audit checks companion
// descriptors for every runbook with no fail-fast (a periodic sweep wants
// the complete list), while change validation fail-fasts per runbook
// through companion, static analysis, and documentation checks (a PR gate
// wants the first actionable problem per file). Files are always processed
// independently of each other.
package runner

import (
	"context"
	"fmt"
	"os"

	"github.com/runbookops/runbook-guard/pkg/analyzer"
	"github.com/runbookops/runbook-guard/pkg/console"
	"github.com/runbookops/runbook-guard/pkg/gitutil"
	"github.com/runbookops/runbook-guard/pkg/logger"
	"github.com/runbookops/runbook-guard/pkg/report"
	"github.com/runbookops/runbook-guard/pkg/runbook"
)

var runnerLog = logger.New("runner:runner")

// Outcome is the verdict for one runbook: pass, or fail with messages.
type Outcome struct {
	Runbook  runbook.Runbook
	Failures []string
}

// Passed reports whether the runbook passed every check that ran.
func (o Outcome) Passed() bool {
	return len(o.Failures) == 0
}

// Summary aggregates the outcomes of one run.
type Summary struct {
	Outcomes []Outcome
}

// Total returns the number of runbooks evaluated.
func (s *Summary) Total() int {
	return len(s.Outcomes)
}

// FailedCount returns the number of runbooks with at least one failure.
func (s *Summary) FailedCount() int {
	n := 0
	for _, o := range s.Outcomes {
		if !o.Passed() {
			n++
		}
	}
	return n
}

// PassedCount returns the number of runbooks that passed.
func (s *Summary) PassedCount() int {
	return s.Total() - s.FailedCount()
}

// Runner drives validation runs against one workspace root.
type Runner struct {
	root         string
	engine       analyzer.Engine
	sink         *report.Sink
	excludedDirs []string

	// changedFiles is the change-discovery boundary, injectable in tests.
	changedFiles func(ctx context.Context, base, head string) ([]string, error)
}

// Option configures a Runner.
type Option func(*Runner)

// WithChangedFiles replaces the version-control change query.
func WithChangedFiles(fn func(ctx context.Context, base, head string) ([]string, error)) Option {
	return func(r *Runner) { r.changedFiles = fn }
}

// WithExcludedDirs replaces the directory names excluded from discovery.
func WithExcludedDirs(names []string) Option {
	return func(r *Runner) { r.excludedDirs = names }
}

// New creates a Runner rooted at the workspace root. The root is threaded
// explicitly through discovery and path relativization; the process working
// directory is never consulted after startup.
func New(root string, engine analyzer.Engine, sink *report.Sink, opts ...Option) *Runner {
	r := &Runner{
		root:         root,
		engine:       engine,
		sink:         sink,
		excludedDirs: runbook.DefaultExcludedDirs(),
	}
	r.changedFiles = func(ctx context.Context, base, head string) ([]string, error) {
		return gitutil.ChangedBetween(ctx, root, base, head)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AuditScopes runs the scope-audit profile: every runbook under the given
// scopes gets a companion check, all of them are checked even when earlier
// ones fail, and every missing descriptor is reported.
func (r *Runner) AuditScopes(ctx context.Context, scopes []string) (*Summary, error) {
	runnerLog.Printf("Starting scope audit: scopes=%v", scopes)

	files, err := runbook.DiscoverScopes(r.root, scopes, r.excludedDirs)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	if len(files) == 0 {
		r.sink.Info("No runbooks found under the given scopes. Skipping permissions audit.")
		return summary, nil
	}

	for _, rb := range files {
		fail := r.guarded(rb, func() *runbook.Failure {
			return runbook.CheckCompanion(rb)
		})
		summary.Outcomes = append(summary.Outcomes, r.record(rb, fail))
	}

	missing := summary.FailedCount()
	if missing > 0 {
		r.sink.Info(fmt.Sprintf("Missing permissions JSON: %d", missing))
	} else {
		r.sink.Success(fmt.Sprintf("All %d runbooks have a permissions JSON descriptor.", summary.Total()))
	}
	r.writeTable(summary)
	return summary, nil
}

// ValidateChanges runs the change-validation profile over runbooks added or
// modified between base and head. Checks run per file in a fixed order —
// companion, static analysis, documentation — stopping at the first failure
// for that file; remaining files are still attempted.
func (r *Runner) ValidateChanges(ctx context.Context, base, head string) (*Summary, error) {
	runnerLog.Printf("Starting change validation: base=%s, head=%s", base, head)

	relPaths, err := r.changedFiles(ctx, base, head)
	if err != nil {
		// Revision inspection failure is an environment problem, fatal
		// before any per-file check runs.
		return nil, err
	}

	files := runbook.FromRelPaths(r.root, relPaths)
	summary := &Summary{}
	if len(files) == 0 {
		r.sink.Info(fmt.Sprintf("No runbooks changed between %s and %s. Skipping validation.", base, head))
		return summary, nil
	}

	for _, rb := range files {
		fail := r.guarded(rb, func() *runbook.Failure {
			return r.validateOne(ctx, rb)
		})
		summary.Outcomes = append(summary.Outcomes, r.record(rb, fail))
	}

	if failed := summary.FailedCount(); failed > 0 {
		r.sink.Info(fmt.Sprintf("%d of %d changed runbooks failed validation.", failed, summary.Total()))
	} else {
		r.sink.Success(fmt.Sprintf("All %d changed runbooks passed validation.", summary.Total()))
	}
	r.writeTable(summary)
	return summary, nil
}

// validateOne runs the fail-fast check chain for one runbook.
func (r *Runner) validateOne(ctx context.Context, rb runbook.Runbook) *runbook.Failure {
	if fail := runbook.CheckCompanion(rb); fail != nil {
		return fail
	}
	r.sink.Success(fmt.Sprintf("%s: permissions JSON present", rb.RelPath))

	if fail := runbook.CheckStaticAnalysis(ctx, r.engine, rb); fail != nil {
		return fail
	}
	r.sink.Success(fmt.Sprintf("%s: static analysis passed", rb.RelPath))

	source, err := os.ReadFile(rb.Path)
	if err != nil {
		return runbook.Failf("%s: reading runbook: %v", rb.RelPath, err)
	}
	header, fail := runbook.ParseHelpHeader(string(source))
	if fail != nil {
		return runbook.Failf("%s: %s", rb.RelPath, fail.Message)
	}
	params, fail := runbook.ExtractParameters(ctx, r.engine, rb)
	if fail != nil {
		return fail
	}
	if fail := runbook.CheckDocumentation(header, params, rb.RelPath); fail != nil {
		return fail
	}
	r.sink.Success(fmt.Sprintf("%s: documentation complete", rb.RelPath))
	return nil
}

// guarded converts a panic inside one runbook's checks into a failure for
// that runbook so a single bad file cannot abort the run.
func (r *Runner) guarded(rb runbook.Runbook, check func() *runbook.Failure) (fail *runbook.Failure) {
	defer func() {
		if rec := recover(); rec != nil {
			runnerLog.Printf("Recovered panic while checking %s: %v", rb.RelPath, rec)
			fail = runbook.Failf("%s: internal error while validating: %v", rb.RelPath, rec)
		}
	}()
	return check()
}

// record converts a check result into an Outcome and reports any failure.
func (r *Runner) record(rb runbook.Runbook, fail *runbook.Failure) Outcome {
	if fail == nil {
		return Outcome{Runbook: rb}
	}
	r.sink.Failure(rb.RelPath, fail.Message)
	return Outcome{Runbook: rb, Failures: []string{fail.Message}}
}

func (r *Runner) writeTable(summary *Summary) {
	config := console.TableConfig{
		Title:   "Validation summary",
		Headers: []string{"Runbook", "Result"},
	}
	for _, o := range summary.Outcomes {
		result := "passed"
		if !o.Passed() {
			result = "failed"
		}
		config.Rows = append(config.Rows, []string{o.Runbook.RelPath, result})
	}
	r.sink.Table(config)
}
