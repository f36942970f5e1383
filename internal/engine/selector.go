package engine

import (
	"github.com/discrete-sharp/mister.version/internal/grammar"
	"github.com/discrete-sharp/mister.version/internal/semver"
	"github.com/discrete-sharp/mister.version/internal/vcsrepo"
)

// parseTags interprets raw adapter tags under tagPrefix, silently
// dropping anything that does not match the grammar or prefix — this
// is the "InvalidTagName: not an error" degradation from the error
// design.
func parseTags(raw []vcsrepo.Tag, tagPrefix string) []grammar.VersionTag {
	out := make([]grammar.VersionTag, 0, len(raw))
	for _, t := range raw {
		if vt, ok := grammar.ParseTagName(tagPrefix, t.TargetCommitID, t.Name); ok {
			out = append(out, vt)
		}
	}
	return out
}

// seriesMatches reports whether v belongs to the series named by
// filter. A nil filter matches everything (Main/Feature, or a Release
// branch whose own version could not be extracted).
func seriesMatches(v semver.SemVer, filter *semver.SemVer) bool {
	if filter == nil {
		return true
	}
	return v.Major == filter.Major && v.Minor == filter.Minor
}

// selectLatest returns the highest-SemVer tag matching pred, breaking
// ties by keeping the first one encountered (enumeration order is
// adapter-dependent but stable within a call).
func selectLatest(tags []grammar.VersionTag, pred func(grammar.VersionTag) bool) (grammar.VersionTag, bool) {
	var best grammar.VersionTag
	found := false
	for _, vt := range tags {
		if !pred(vt) {
			continue
		}
		if !found || vt.SemVer.Compare(best.SemVer) > 0 {
			best = vt
			found = true
		}
	}
	return best, found
}

// selectLatestGlobal returns the latest Global tag, optionally
// restricted to a series.
func selectLatestGlobal(tags []grammar.VersionTag, seriesFilter *semver.SemVer) (grammar.VersionTag, bool) {
	return selectLatest(tags, func(vt grammar.VersionTag) bool {
		return vt.Scope == grammar.ScopeGlobal && seriesMatches(vt.SemVer, seriesFilter)
	})
}

// selectLatestProject returns the latest Project-scoped tag for slug,
// optionally restricted to a series.
func selectLatestProject(tags []grammar.VersionTag, slug string, seriesFilter *semver.SemVer) (grammar.VersionTag, bool) {
	return selectLatest(tags, func(vt grammar.VersionTag) bool {
		return vt.Scope == grammar.ScopeProject && vt.Slug == slug && seriesMatches(vt.SemVer, seriesFilter)
	})
}
