// Package grammar implements the tag-name grammar layered on top of
// internal/semver: global tags ("v1.2.3") and project-scoped tags
// ("v1.2.3-core").
package grammar

import (
	"strings"

	"github.com/discrete-sharp/mister.version/internal/semver"
)

// Scope identifies whether a VersionTag applies to the whole
// repository or to a single project.
type Scope int

const (
	// ScopeGlobal marks a tag with no project slug.
	ScopeGlobal Scope = iota
	// ScopeProject marks a tag carrying a lowercased project slug.
	ScopeProject
)

func (s Scope) String() string {
	if s == ScopeProject {
		return "project"
	}
	return "global"
}

// VersionTag is the interpreted form of a repository tag: its parsed
// SemVer, the commit it targets, and whether it is global or scoped
// to a project slug.
type VersionTag struct {
	Name     string
	SemVer   semver.SemVer
	CommitID string
	Scope    Scope
	Slug     string // only meaningful when Scope == ScopeProject
}

// ParseTagName interprets a raw tag name under the given prefix. It
// returns ok=false when the prefix is absent or the version component
// fails to parse — both are silent, non-error outcomes per the
// engine's error-handling policy: malformed or foreign tags are simply
// excluded from candidate sets.
func ParseTagName(tagPrefix, commitID, name string) (VersionTag, bool) {
	remainder, ok := stripPrefixFold(name, tagPrefix)
	if !ok {
		return VersionTag{}, false
	}

	if idx := strings.IndexByte(remainder, '-'); idx >= 0 {
		versionPart := remainder[:idx]
		slug := strings.ToLower(remainder[idx+1:])
		if slug == "" {
			return VersionTag{}, false
		}
		v, ok := semver.Parse(versionPart)
		if !ok {
			return VersionTag{}, false
		}
		return VersionTag{
			Name:     name,
			SemVer:   v,
			CommitID: commitID,
			Scope:    ScopeProject,
			Slug:     slug,
		}, true
	}

	v, ok := semver.Parse(remainder)
	if !ok {
		return VersionTag{}, false
	}
	return VersionTag{
		Name:     name,
		SemVer:   v,
		CommitID: commitID,
		Scope:    ScopeGlobal,
	}, true
}

// FormatGlobalTag renders a global tag name.
func FormatGlobalTag(tagPrefix string, v semver.SemVer) string {
	return tagPrefix + v.Format()
}

// FormatProjectTag renders a project-scoped tag name. slug should
// already be lowercased; it is lowercased again defensively.
func FormatProjectTag(tagPrefix string, v semver.SemVer, slug string) string {
	return tagPrefix + v.Format() + "-" + strings.ToLower(slug)
}

// stripPrefixFold removes prefix from the head of s case-insensitively.
func stripPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) {
		return "", false
	}
	if !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}
	return s[len(prefix):], true
}
