package commands

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/discrete-sharp/mister.version/internal/config"
	"github.com/discrete-sharp/mister.version/internal/engine"
	"github.com/discrete-sharp/mister.version/internal/project"
	"github.com/discrete-sharp/mister.version/internal/vcsrepo"
)

var flagParallel bool

var reportCmd = &cobra.Command{
	Use:   "report <manifest-dir>",
	Short: "Compute versions for every project under a manifest directory",
	Args:  cobra.ExactArgs(1),
	Example: `  # List every project's computed version as a table
  misver report ./projects

  # Export the same report as CSV
  misver -o csv report ./projects > versions.csv

  # Fan out one git adapter per goroutine for a large monorepo
  misver report --parallel ./projects`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagParallel, "parallel", false, "compute projects concurrently, one git adapter per goroutine")
}

func runReport(cmd *cobra.Command, args []string) error {
	refs, err := project.LoadManifestDir(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}

	var rows []reportRow
	var changedCount int
	if flagParallel {
		rows, changedCount, err = computeReportRowsParallel(refs, cfg)
	} else {
		rows, changedCount, err = computeReportRowsSequential(refs, cfg)
	}
	if err != nil {
		return err
	}

	if err := renderRows(cmd, rows); err != nil {
		return err
	}

	if flagOutput == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s of %s projects changed\n",
			humanize.Comma(int64(changedCount)), humanize.Comma(int64(len(refs))))
	}
	return nil
}

// computeReportRowsSequential reuses a single GitAdapter across every
// project, per §5's "exclusively borrowed by one decision at a time"
// rule: the adapter's tag cache is populated once and reused for the
// whole report.
func computeReportRowsSequential(refs []project.Ref, cfg engine.Config) ([]reportRow, int, error) {
	adapter := vcsrepo.NewGitAdapter(flagRepoPath)
	branch, err := adapter.CurrentBranch()
	if err != nil {
		return nil, 0, err
	}

	rows := make([]reportRow, 0, len(refs))
	changedCount := 0
	for _, ref := range refs {
		out, err := engine.ComputeVersion(adapter, engine.DecisionInput{
			BranchName:   branch.Name,
			HeadCommitID: branch.TipCommitID,
			Project:      ref,
			TagPrefix:    cfg.TagPrefix,
		}, cfg, logger)
		if err != nil {
			return nil, 0, fmt.Errorf("project %s: %w", ref.Name, err)
		}
		if out.Changed {
			changedCount++
		}
		rows = append(rows, rowFor(ref, out))
	}
	return rows, changedCount, nil
}

// computeReportRowsParallel fans out one GitAdapter per goroutine,
// bounded by GOMAXPROCS, since each adapter shells out independently
// and holds no state shared with the others. Row order is preserved so
// output is deterministic regardless of goroutine completion order.
func computeReportRowsParallel(refs []project.Ref, cfg engine.Config) ([]reportRow, int, error) {
	branchAdapter := vcsrepo.NewGitAdapter(flagRepoPath)
	branch, err := branchAdapter.CurrentBranch()
	if err != nil {
		return nil, 0, err
	}

	rows := make([]reportRow, len(refs))
	errs := make([]error, len(refs))

	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, ref project.Ref) {
			defer wg.Done()
			defer func() { <-sem }()

			adapter := vcsrepo.NewGitAdapter(flagRepoPath)
			out, err := engine.ComputeVersion(adapter, engine.DecisionInput{
				BranchName:   branch.Name,
				HeadCommitID: branch.TipCommitID,
				Project:      ref,
				TagPrefix:    cfg.TagPrefix,
			}, cfg, logger)
			if err != nil {
				errs[i] = fmt.Errorf("project %s: %w", ref.Name, err)
				return
			}
			rows[i] = rowFor(ref, out)
		}(i, ref)
	}
	wg.Wait()

	changedCount := 0
	for i, err := range errs {
		if err != nil {
			return nil, 0, err
		}
		if rows[i].Changed {
			changedCount++
		}
	}
	return rows, changedCount, nil
}
