// Package commands provides the command tree for misver: a report
// verb that lists every project under a manifest directory, and a
// version verb that computes a single project's version.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/discrete-sharp/mister.version/internal/logging"
)

var (
	flagRepoPath   string
	flagConfigPath string
	flagLogLevel   string
	flagOutput     string

	logger *logging.Logger
)

// RootCmd is the misver root command.
var RootCmd = &cobra.Command{
	Use:   "misver",
	Short: "Compute per-project semantic versions for a monorepo",
	Long: `misver derives a project's semantic version from repository tags,
commit history, and its dependency graph, without requiring version
numbers to be committed to source.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(cmd.ErrOrStderr(), flagLogLevel)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagRepoPath, "repo", ".", "path to the git repository")
	RootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "misver.json", "path to the config file")
	RootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
	RootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "output format: text, json, csv")

	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(reportCmd)
}

// Execute runs the misver command tree.
func Execute() error {
	return RootCmd.Execute()
}
