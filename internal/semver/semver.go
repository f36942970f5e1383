// Package semver parses and formats the semantic version triples used
// throughout the version-decision engine.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// SemVer is a major.minor.patch triple. Ordering is lexicographic.
type SemVer struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater
// than other, comparing major, then minor, then patch.
func (v SemVer) Compare(other SemVer) int {
	if v.Major != other.Major {
		return compareUint32(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return compareUint32(v.Minor, other.Minor)
	}
	return compareUint32(v.Patch, other.Patch)
}

func compareUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether v sorts before other.
func (v SemVer) Less(other SemVer) bool {
	return v.Compare(other) < 0
}

// SameSeries reports whether v and other share major and minor.
func (v SemVer) SameSeries(other SemVer) bool {
	return v.Major == other.Major && v.Minor == other.Minor
}

// WithPatchBump returns a copy of v with patch incremented by one.
func (v SemVer) WithPatchBump() SemVer {
	v.Patch++
	return v
}

// Format renders v as "M.m.p", always including the patch component.
func (v SemVer) Format() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v SemVer) String() string {
	return v.Format()
}

// Parse accepts "M.m" or "M.m.p", optionally followed by "-<anything>"
// which is discarded. It returns ok=false on any parse failure; patch
// defaults to 0 when omitted.
func Parse(s string) (v SemVer, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SemVer{}, false
	}

	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		s = s[:idx]
	}

	parts := strings.Split(s, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return SemVer{}, false
	}

	major, err := parseComponent(parts[0])
	if err != nil {
		return SemVer{}, false
	}
	minor, err := parseComponent(parts[1])
	if err != nil {
		return SemVer{}, false
	}

	var patch uint32
	if len(parts) == 3 {
		patch, err = parseComponent(parts[2])
		if err != nil {
			return SemVer{}, false
		}
	}

	return SemVer{Major: major, Minor: minor, Patch: patch}, true
}

func parseComponent(s string) (uint32, error) {
	if s == "" {
		return 0, fmt.Errorf("empty version component")
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
