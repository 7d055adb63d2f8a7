// Package gitutil queries the version-control system for change-mode
// discovery: commit parent lists and added-or-modified file diffs. Every
// query is a synchronous git subprocess whose exit status is checked before
// its output is trusted; a failing query is an environment error that
// aborts the whole run, never a per-file failure.
package gitutil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/runbookops/runbook-guard/pkg/logger"
)

var gitLog = logger.New("gitutil:gitutil")

// run executes git with the workspace root as its working tree and returns
// trimmed stdout. Stderr is folded into the error for diagnostics.
func run(ctx context.Context, root string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", root}, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	gitLog.Printf("Running git %s", strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("git %s: %w: %s", args[0], err, detail)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// CommitParents resolves a revision and returns its parent hashes in order.
func CommitParents(ctx context.Context, root, rev string) ([]string, error) {
	out, err := run(ctx, root, "rev-list", "--parents", "-n", "1", rev)
	if err != nil {
		return nil, fmt.Errorf("resolving parents of %s: %w", rev, err)
	}
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return nil, fmt.Errorf("resolving parents of %s: empty rev-list output", rev)
	}
	// First field is the commit itself.
	return fields[1:], nil
}

// firstParent resolves rev^, the first parent of a revision.
func firstParent(ctx context.Context, root, rev string) (string, error) {
	out, err := run(ctx, root, "rev-parse", rev+"^")
	if err != nil {
		return "", fmt.Errorf("resolving first parent of %s: %w", rev, err)
	}
	return out, nil
}

// ResolveDiffRange decides which two revisions to diff. When head is a
// merge commit (>= 2 parents) it typically represents an ephemeral merge of
// the target branch into the source branch, so diffing the raw base..head
// would drag in unrelated upstream changes. In that case the range becomes
// firstParent(parent1)..parent2 — the true pre-merge base against the
// incoming branch tip. A non-merge head diffs base..head directly.
func ResolveDiffRange(ctx context.Context, root, base, head string) (from, to string, err error) {
	parents, err := CommitParents(ctx, root, head)
	if err != nil {
		return "", "", err
	}
	if len(parents) < 2 {
		gitLog.Printf("Head %s is not a merge commit, diffing %s..%s", head, base, head)
		return base, head, nil
	}

	from, err = firstParent(ctx, root, parents[0])
	if err != nil {
		return "", "", err
	}
	to = parents[1]
	gitLog.Printf("Head %s is a merge commit, diffing %s..%s", head, from, to)
	return from, to, nil
}

// ChangedFiles lists paths added or modified when moving from the `from`
// revision to the `to` revision, relative to the repository root.
func ChangedFiles(ctx context.Context, root, from, to string) ([]string, error) {
	out, err := run(ctx, root, "diff", "--name-only", "--diff-filter=AM", from, to)
	if err != nil {
		return nil, fmt.Errorf("diffing %s..%s: %w", from, to, err)
	}
	if out == "" {
		return nil, nil
	}
	paths := strings.Split(out, "\n")
	for i, p := range paths {
		paths[i] = strings.TrimSpace(p)
	}
	gitLog.Printf("Changed files: from=%s, to=%s, count=%d", from, to, len(paths))
	return paths, nil
}

// ChangedBetween combines range resolution and diffing: the full
// change-mode discovery contract.
func ChangedBetween(ctx context.Context, root, base, head string) ([]string, error) {
	from, to, err := ResolveDiffRange(ctx, root, base, head)
	if err != nil {
		return nil, err
	}
	return ChangedFiles(ctx, root, from, to)
}
