package engine

import (
	"fmt"

	"github.com/discrete-sharp/mister.version/internal/branch"
	"github.com/discrete-sharp/mister.version/internal/semver"
)

// composeResult is the composer's output before rationale is attached.
type composeResult struct {
	Version string
	Changed bool
}

// compose applies the branch-type rules from the version grammar to
// the base version and change signal. It is total: a Release branch
// whose own version could not be extracted falls back to the base's
// major/minor rather than failing.
func compose(kind branch.Kind, base semver.SemVer, releaseSeries *semver.SemVer, changed bool, branchName, headCommitID string) composeResult {
	switch kind {
	case branch.Main:
		if !changed {
			return composeResult{Version: base.Format(), Changed: false}
		}
		return composeResult{Version: base.WithPatchBump().Format(), Changed: true}

	case branch.Release:
		effective := base
		if releaseSeries != nil {
			effective = semver.SemVer{Major: releaseSeries.Major, Minor: releaseSeries.Minor, Patch: base.Patch}
		}
		if !changed {
			return composeResult{Version: effective.Format(), Changed: false}
		}
		return composeResult{Version: effective.WithPatchBump().Format(), Changed: true}

	default: // branch.Feature
		if !changed {
			return composeResult{Version: base.Format(), Changed: false}
		}
		slug := branch.Slug(branchName)
		return composeResult{
			Version: fmt.Sprintf("%s-%s.%s", base.Format(), slug, shortHash(headCommitID)),
			Changed: true,
		}
	}
}

// shortHash returns the first seven hex characters of a commit id, or
// the documented placeholder when no commit id is available.
func shortHash(commitID string) string {
	if commitID == "" {
		return "0000000"
	}
	if len(commitID) > 7 {
		return commitID[:7]
	}
	return commitID
}
