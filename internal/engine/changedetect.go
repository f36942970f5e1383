package engine

import (
	"fmt"
	"path"
	"strings"

	"github.com/discrete-sharp/mister.version/internal/grammar"
	"github.com/discrete-sharp/mister.version/internal/logging"
	"github.com/discrete-sharp/mister.version/internal/project"
	"github.com/discrete-sharp/mister.version/internal/vcsrepo"
)

// changeResult is the outcome of change detection: whether the
// project changed, and a rationale describing which rule fired.
type changeResult struct {
	Changed   bool
	Rationale string
}

// detectChange evaluates the four change rules in order, returning
// the result of the first rule that matches. Adapter diff failures
// abort the call (propagated to ComputeVersion's caller); failures
// while checking a single dependency's ancestry are logged and that
// dependency is treated as unchanged.
func detectChange(adapter vcsrepo.Adapter, base BaseVersion, headCommitID string, proj project.Ref, tagPrefix string, allTags []grammar.VersionTag, logger *logging.Logger) (changeResult, error) {
	if !base.HasCommit {
		return changeResult{Changed: true, Rationale: "no base"}, nil
	}

	diffs, err := adapter.DiffPaths(base.CommitID, headCommitID)
	if err != nil {
		return changeResult{}, err
	}

	if r, ok := matchDirectProjectChange(diffs, proj.RelativePath); ok {
		return r, nil
	}
	if r, ok := matchDependencyChange(diffs, proj.Dependencies); ok {
		return r, nil
	}
	if r, ok := matchDependencyRetag(adapter, base, proj.Dependencies, allTags, logger); ok {
		return r, nil
	}
	if r, ok := matchPackageLockChange(diffs, proj.RelativePath); ok {
		return r, nil
	}

	return changeResult{Changed: false, Rationale: "no changes detected since base"}, nil
}

// underPath reports whether p lies under dir: equal to dir, or
// prefixed by dir + "/". An empty dir is the repository root, which
// every path lies under.
func underPath(p, dir string) bool {
	if dir == "" {
		return true
	}
	return p == dir || strings.HasPrefix(p, dir+"/")
}

func matchDirectProjectChange(diffs []vcsrepo.DiffEntry, projectDir string) (changeResult, bool) {
	var hits []string
	for _, d := range diffs {
		if underPath(d.Path, projectDir) {
			hits = append(hits, d.Path)
		}
	}
	if len(hits) == 0 {
		return changeResult{}, false
	}
	return changeResult{
		Changed:   true,
		Rationale: fmt.Sprintf("project files changed: %s", sampleJoin(hits)),
	}, true
}

func matchDependencyChange(diffs []vcsrepo.DiffEntry, deps []string) (changeResult, bool) {
	for _, dep := range deps {
		var hits []string
		for _, d := range diffs {
			if underPath(d.Path, dep) {
				hits = append(hits, d.Path)
			}
		}
		if len(hits) > 0 {
			return changeResult{
				Changed:   true,
				Rationale: fmt.Sprintf("dependency %q changed: %s", dep, sampleJoin(hits)),
			}, true
		}
	}
	return changeResult{}, false
}

// matchDependencyRetag implements rule 3. The dependency's tag slug
// is derived from the basename of its relative path, lowercased — the
// ProjectRef data model only carries dependency paths, not names, so
// this is the only signal available to recover the slug. See
// DESIGN.md for this decision.
func matchDependencyRetag(adapter vcsrepo.Adapter, base BaseVersion, deps []string, allTags []grammar.VersionTag, logger *logging.Logger) (changeResult, bool) {
	for _, dep := range deps {
		depName := path.Base(dep)
		depSlug := strings.ToLower(depName)

		tag, found := selectLatestProject(allTags, depSlug, nil)
		if !found {
			continue
		}
		if tag.CommitID == base.CommitID {
			continue
		}

		isAncestor, err := adapter.IsAncestor(base.CommitID, tag.CommitID)
		if err != nil {
			if logger != nil {
				logger.Warnf("dependency %s ancestry check failed, treating as unchanged: %v", depName, err)
			}
			continue
		}
		if isAncestor {
			return changeResult{
				Changed:   true,
				Rationale: fmt.Sprintf("dependency %s was versioned (%s) after base", depName, tag.Name),
			}, true
		}
	}
	return changeResult{}, false
}

func matchPackageLockChange(diffs []vcsrepo.DiffEntry, projectDir string) (changeResult, bool) {
	lockPath := "packages.lock.json"
	if projectDir != "" {
		lockPath = projectDir + "/packages.lock.json"
	}
	for _, d := range diffs {
		if d.Path == lockPath {
			return changeResult{
				Changed:   true,
				Rationale: fmt.Sprintf("package lock changed: %s", d.Path),
			}, true
		}
	}
	return changeResult{}, false
}

// sampleJoin renders up to three paths for a rationale string, noting
// how many more were elided.
func sampleJoin(items []string) string {
	total := len(items)
	shown := items
	if total > 3 {
		shown = items[:3]
	}
	s := strings.Join(shown, ", ")
	if total > 3 {
		s += fmt.Sprintf(" (+%d more)", total-3)
	}
	return s
}
