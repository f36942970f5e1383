package engine

import "github.com/discrete-sharp/mister.version/internal/project"

// DecisionInput is everything compute_version needs for one project on
// one branch at one commit.
type DecisionInput struct {
	BranchName   string
	HeadCommitID string
	Project      project.Ref

	// TagPrefix is the resolved prefix this decision should use when
	// matching tag names. Callers construct it from Config.TagPrefix;
	// the core treats it as authoritative and never reads Config
	// directly, keeping the core's input value-shaped per the data
	// model rather than reaching into the collaborator-facing Config.
	TagPrefix string
}

// DecisionOutput is the result of one compute_version call.
type DecisionOutput struct {
	Version   string
	Changed   bool
	Rationale string
}
