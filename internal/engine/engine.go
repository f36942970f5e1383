// Package engine implements the version-decision engine: the
// algorithm that derives a project's base version from repository
// tags, detects whether the project changed since that base, and
// composes the resulting version string.
package engine

import (
	"fmt"

	"github.com/discrete-sharp/mister.version/internal/branch"
	"github.com/discrete-sharp/mister.version/internal/logging"
	"github.com/discrete-sharp/mister.version/internal/semver"
	"github.com/discrete-sharp/mister.version/internal/vcsrepo"
)

// ComputeVersion is the engine's sole public entry point. It is
// single-threaded and synchronous: no operation inside it suspends,
// and it touches the adapter at most twice (tag enumeration, then
// diff enumeration plus one ancestry check per direct dependency).
// logger may be nil; when non-nil it receives warnings for
// non-fatal per-dependency failures and, when cfg.Debug is set,
// a trace of the decision.
func ComputeVersion(adapter vcsrepo.Adapter, input DecisionInput, cfg Config, logger *logging.Logger) (DecisionOutput, error) {
	if cfg.ForceVersion != "" {
		return DecisionOutput{Version: cfg.ForceVersion, Changed: true, Rationale: "forced"}, nil
	}

	if (input.Project.IsTest && cfg.SkipTests) || (!input.Project.IsPackable && cfg.SkipNonPackable) {
		return DecisionOutput{Version: "1.0.0", Changed: false, Rationale: "skipped"}, nil
	}

	kind := branch.Classify(input.BranchName)

	var releaseSeries *semver.SemVer
	if kind == branch.Release {
		if v, ok := branch.ExtractReleaseVersion(input.BranchName, input.TagPrefix); ok {
			releaseSeries = &v
		}
	}

	rawTags, err := adapter.Tags()
	if err != nil {
		return DecisionOutput{}, err
	}
	allTags := parseTags(rawTags, input.TagPrefix)

	var seriesFilter *semver.SemVer
	if kind == branch.Release {
		seriesFilter = releaseSeries
	}

	globalTag, globalFound := selectLatestGlobal(allTags, seriesFilter)
	projectTag, projectFound := selectLatestProject(allTags, input.Project.Slug(), seriesFilter)
	base := resolveBase(globalTag, globalFound, projectTag, projectFound)

	if logger != nil && cfg.Debug {
		logger.Debugf("resolved base %s (origin=%s) for project %s on %s branch %q",
			base.SemVer.Format(), base.Origin, input.Project.Name, kind, input.BranchName)
	}

	change, err := detectChange(adapter, base, input.HeadCommitID, input.Project, input.TagPrefix, allTags, logger)
	if err != nil {
		return DecisionOutput{}, err
	}

	result := compose(kind, base.SemVer, releaseSeries, change.Changed, input.BranchName, input.HeadCommitID)

	return DecisionOutput{
		Version:   result.Version,
		Changed:   result.Changed,
		Rationale: buildRationale(cfg, kind, base, change, result),
	}, nil
}

// buildRationale attaches progressively verbose detail to the
// change-detector's rationale according to cfg.Debug/ExtraDebug.
// Verbosity never alters the decision itself.
func buildRationale(cfg Config, kind branch.Kind, base BaseVersion, change changeResult, result composeResult) string {
	if !cfg.Debug && !cfg.ExtraDebug {
		return change.Rationale
	}

	detail := fmt.Sprintf("%s; branch=%s base=%s(origin=%s) -> %s",
		change.Rationale, kind, base.SemVer.Format(), base.Origin, result.Version)

	if cfg.ExtraDebug {
		detail += fmt.Sprintf(" [base_commit_known=%v base_commit=%q]", base.HasCommit, base.CommitID)
	}
	return detail
}
