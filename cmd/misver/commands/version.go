package commands

import (
	"github.com/spf13/cobra"

	"github.com/discrete-sharp/mister.version/internal/config"
	"github.com/discrete-sharp/mister.version/internal/engine"
	"github.com/discrete-sharp/mister.version/internal/project"
	"github.com/discrete-sharp/mister.version/internal/vcsrepo"
)

var versionCmd = &cobra.Command{
	Use:   "version <project-manifest>",
	Short: "Compute the version for a single project",
	Args:  cobra.ExactArgs(1),
	Example: `  # Compute the version for Core on the repo's current branch/HEAD
  misver version src/Core.project.json

  # Get machine-readable output for scripting
  misver -o json version src/Core.project.json`,
	RunE: runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	ref, err := project.LoadManifest(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}

	adapter := vcsrepo.NewGitAdapter(flagRepoPath)
	branch, err := adapter.CurrentBranch()
	if err != nil {
		return err
	}

	out, err := engine.ComputeVersion(adapter, engine.DecisionInput{
		BranchName:   branch.Name,
		HeadCommitID: branch.TipCommitID,
		Project:      ref,
		TagPrefix:    cfg.TagPrefix,
	}, cfg, logger)
	if err != nil {
		return err
	}

	return renderRows(cmd, []reportRow{rowFor(ref, out)})
}
