// Package branch classifies branch names into Main, Release, or
// Feature and extracts the release series from a Release branch name.
package branch

import (
	"regexp"
	"strings"

	"github.com/discrete-sharp/mister.version/internal/semver"
)

// Kind enumerates the three branch classifications the engine cares
// about.
type Kind int

const (
	// Main is the trunk branch (main/master, any case).
	Main Kind = iota
	// Release is a release-stabilization branch.
	Release
	// Feature is everything else.
	Feature
)

func (k Kind) String() string {
	switch k {
	case Main:
		return "main"
	case Release:
		return "release"
	default:
		return "feature"
	}
}

var releasePattern = regexp.MustCompile(`(?i)^(release/.+|release-.+|v\d+\.\d+(\.\d+)?)$`)

// Classify maps a branch name to its Kind, evaluating the rules in
// spec order: main/master first, then the release patterns, and
// Feature as the catch-all. Every non-empty string maps to exactly
// one Kind.
func Classify(name string) Kind {
	lower := strings.ToLower(name)
	if lower == "main" || lower == "master" {
		return Main
	}
	if releasePattern.MatchString(name) {
		return Release
	}
	return Feature
}

// ExtractReleaseVersion pulls the M.m(.p) series out of a Release
// branch name, stripping a release/ or release- prefix and then the
// configured tag prefix if present. It returns ok=false if what
// remains does not parse as a SemVer; callers must treat that as a
// graceful degradation, never an error.
func ExtractReleaseVersion(name, tagPrefix string) (semver.SemVer, bool) {
	remainder := name
	switch {
	case strings.HasPrefix(strings.ToLower(remainder), "release/"):
		remainder = remainder[len("release/"):]
	case strings.HasPrefix(strings.ToLower(remainder), "release-"):
		remainder = remainder[len("release-"):]
	}

	if tagPrefix != "" && len(remainder) >= len(tagPrefix) &&
		strings.EqualFold(remainder[:len(tagPrefix)], tagPrefix) {
		remainder = remainder[len(tagPrefix):]
	}

	return semver.Parse(remainder)
}

// Slug returns the branch-slug used in Feature version suffixes: '/'
// and '_' replaced by '-', lowercased.
func Slug(name string) string {
	replaced := strings.NewReplacer("/", "-", "_", "-").Replace(name)
	return strings.ToLower(replaced)
}
