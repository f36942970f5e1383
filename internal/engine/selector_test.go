package engine

import (
	"testing"

	"github.com/discrete-sharp/mister.version/internal/branch"
	"github.com/discrete-sharp/mister.version/internal/grammar"
	"github.com/discrete-sharp/mister.version/internal/semver"
)

func tag(name string, v semver.SemVer, scope grammar.Scope, slug string) grammar.VersionTag {
	return grammar.VersionTag{Name: name, SemVer: v, Scope: scope, Slug: slug}
}

func TestSelectLatestGlobalMonotonicity(t *testing.T) {
	tags := []grammar.VersionTag{
		tag("v1.0.0", semver.SemVer{Major: 1, Minor: 0, Patch: 0}, grammar.ScopeGlobal, ""),
		tag("v1.2.0", semver.SemVer{Major: 1, Minor: 2, Patch: 0}, grammar.ScopeGlobal, ""),
	}
	got, ok := selectLatestGlobal(tags, nil)
	if !ok || got.SemVer != (semver.SemVer{Major: 1, Minor: 2, Patch: 0}) {
		t.Fatalf("expected latest 1.2.0, got %+v ok=%v", got, ok)
	}

	newer := tag("v2.0.0", semver.SemVer{Major: 2, Minor: 0, Patch: 0}, grammar.ScopeGlobal, "")
	got, ok = selectLatestGlobal(append(tags, newer), nil)
	if !ok || got.SemVer != newer.SemVer {
		t.Fatalf("expected newly added 2.0.0 to win, got %+v", got)
	}
}

func TestSelectLatestGlobalSeriesFilter(t *testing.T) {
	tags := []grammar.VersionTag{
		tag("v1.0.0", semver.SemVer{Major: 1, Minor: 0, Patch: 0}, grammar.ScopeGlobal, ""),
		tag("v2.0.0", semver.SemVer{Major: 2, Minor: 0, Patch: 0}, grammar.ScopeGlobal, ""),
		tag("v2.0.5", semver.SemVer{Major: 2, Minor: 0, Patch: 5}, grammar.ScopeGlobal, ""),
	}
	filter := &semver.SemVer{Major: 2, Minor: 0}
	got, ok := selectLatestGlobal(tags, filter)
	if !ok || got.SemVer != (semver.SemVer{Major: 2, Minor: 0, Patch: 5}) {
		t.Fatalf("expected 2.0.5 within filtered series, got %+v", got)
	}
}

func TestSelectLatestProjectMatchesSlugOnly(t *testing.T) {
	tags := []grammar.VersionTag{
		tag("v1.0.0-core", semver.SemVer{Major: 1, Minor: 0, Patch: 0}, grammar.ScopeProject, "core"),
		tag("v1.1.0-data", semver.SemVer{Major: 1, Minor: 1, Patch: 0}, grammar.ScopeProject, "data"),
	}
	got, ok := selectLatestProject(tags, "core", nil)
	if !ok || got.Name != "v1.0.0-core" {
		t.Fatalf("expected core-scoped tag, got %+v ok=%v", got, ok)
	}
	if _, ok := selectLatestProject(tags, "ui", nil); ok {
		t.Fatalf("expected no match for unrelated slug")
	}
}

func TestResolveBaseUsesProjectWhenSameSeries(t *testing.T) {
	global := tag("v1.2.0", semver.SemVer{Major: 1, Minor: 2, Patch: 0}, grammar.ScopeGlobal, "")
	proj := tag("v1.2.3-core", semver.SemVer{Major: 1, Minor: 2, Patch: 3}, grammar.ScopeProject, "core")

	base := resolveBase(global, true, proj, true)
	if base.Origin != OriginProject || base.SemVer != proj.SemVer {
		t.Fatalf("expected project tag to win within same series, got %+v", base)
	}
}

func TestResolveBaseIgnoresStaleProjectFromOlderSeries(t *testing.T) {
	global := tag("v2.0.0", semver.SemVer{Major: 2, Minor: 0, Patch: 0}, grammar.ScopeGlobal, "")
	staleProj := tag("v1.5.0-core", semver.SemVer{Major: 1, Minor: 5, Patch: 0}, grammar.ScopeProject, "core")

	base := resolveBase(global, true, staleProj, true)
	if base.Origin != OriginGlobal || base.SemVer != global.SemVer {
		t.Fatalf("expected global tag to win over stale project tag, got %+v", base)
	}
}

func TestResolveBaseDefaultFallbackWhenNoGlobalTag(t *testing.T) {
	base := resolveBase(grammar.VersionTag{}, false, grammar.VersionTag{}, false)
	if base.Origin != OriginDefaultFallback || base.SemVer != (semver.SemVer{Major: 0, Minor: 1, Patch: 0}) || base.HasCommit {
		t.Fatalf("expected synthesized 0.1.0 default, got %+v", base)
	}
}

func TestComposeReleaseSeriesLockIgnoresBaseSeries(t *testing.T) {
	releaseSeries := &semver.SemVer{Major: 3, Minor: 1}
	result := compose(branch.Release, semver.SemVer{Major: 1, Minor: 0, Patch: 5}, releaseSeries, true, "release/v3.1", "deadbeef")
	if result.Version != "3.1.6" {
		t.Fatalf("expected release series to override base major/minor, got %q", result.Version)
	}
}
