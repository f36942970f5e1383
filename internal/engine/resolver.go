package engine

import "github.com/discrete-sharp/mister.version/internal/grammar"

// resolveBase combines the selected Global and Project tags into the
// effective base for a project, per the resolution rule: a
// same-series Project tag wins; otherwise the Global tag (real or
// synthesized default) is the base.
func resolveBase(globalTag grammar.VersionTag, globalFound bool, projectTag grammar.VersionTag, projectFound bool) BaseVersion {
	var global BaseVersion
	if globalFound {
		global = BaseVersion{
			SemVer:    globalTag.SemVer,
			CommitID:  globalTag.CommitID,
			HasCommit: true,
			Origin:    OriginGlobal,
		}
	} else {
		global = defaultBaseVersion()
	}

	if projectFound && projectTag.SemVer.SameSeries(global.SemVer) {
		return BaseVersion{
			SemVer:    projectTag.SemVer,
			CommitID:  projectTag.CommitID,
			HasCommit: true,
			Origin:    OriginProject,
		}
	}

	return global
}
