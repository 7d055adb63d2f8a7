package runbook

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/runbookops/runbook-guard/pkg/constants"
	"github.com/runbookops/runbook-guard/pkg/fileutil"
	"github.com/runbookops/runbook-guard/pkg/logger"
	"github.com/runbookops/runbook-guard/pkg/stringutil"
)

var discoveryLog = logger.New("runbook:discovery")

// DefaultExcludedDirs are directory names whose subtrees are skipped during
// discovery even when they sit inside a scope.
func DefaultExcludedDirs() []string {
	return []string{constants.DocsDirName, constants.CIMetadataDirName}
}

// DiscoverScopes enumerates runbooks under the named scope directories
// below root. Nonexistent scopes are skipped silently; results are sorted
// by path so repeated runs report in the same order. Scopes are assumed
// disjoint, so no deduplication happens.
func DiscoverScopes(root string, scopes, excludedDirs []string) ([]Runbook, error) {
	var found []Runbook

	for _, scope := range scopes {
		scopeDir := filepath.Join(root, scope)
		if !fileutil.DirExists(scopeDir) {
			discoveryLog.Printf("Scope directory does not exist, skipping: %s", scope)
			continue
		}

		err := filepath.WalkDir(scopeDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				for _, excluded := range excludedDirs {
					if d.Name() == excluded {
						return filepath.SkipDir
					}
				}
				return nil
			}
			if !strings.HasSuffix(d.Name(), constants.RunbookExtension) {
				return nil
			}
			found = append(found, Runbook{
				Path:    path,
				RelPath: stringutil.ToSlashRelative(root, path),
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("enumerating scope %s: %w", scope, err)
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
	discoveryLog.Printf("Discovered runbooks: scopes=%d, runbooks=%d", len(scopes), len(found))
	return found, nil
}

// FromRelPaths converts workspace-relative paths (as reported by the
// version-control diff) into Runbooks anchored at root, keeping only
// runbook files outside the CI metadata directory.
func FromRelPaths(root string, relPaths []string) []Runbook {
	var out []Runbook
	for _, rel := range relPaths {
		rel = stringutil.NormalizePath(rel)
		if !strings.HasSuffix(filepath.Base(rel), constants.RunbookExtension) {
			continue
		}
		if stringutil.HasPathSegment(rel, constants.CIMetadataDirName) {
			continue
		}
		out = append(out, Runbook{
			Path:    filepath.Join(root, filepath.FromSlash(rel)),
			RelPath: rel,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RelPath < out[j].RelPath })
	return out
}
