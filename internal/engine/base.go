package engine

import "github.com/discrete-sharp/mister.version/internal/semver"

// Origin identifies which source a BaseVersion was drawn from.
type Origin int

const (
	OriginGlobal Origin = iota
	OriginProject
	OriginDefaultFallback
)

func (o Origin) String() string {
	switch o {
	case OriginGlobal:
		return "global"
	case OriginProject:
		return "project"
	default:
		return "default-fallback"
	}
}

// BaseVersion is the resolved starting point for a decision: a
// semantic version, optionally a commit it was tagged at (absent only
// for the synthesized default), and which source produced it.
type BaseVersion struct {
	SemVer    semver.SemVer
	CommitID  string
	HasCommit bool
	Origin    Origin
}

// defaultBaseVersion is synthesized when no Global tag exists at all.
func defaultBaseVersion() BaseVersion {
	return BaseVersion{
		SemVer:    semver.SemVer{Major: 0, Minor: 1, Patch: 0},
		HasCommit: false,
		Origin:    OriginDefaultFallback,
	}
}
