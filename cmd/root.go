package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd is the base command. Invoked without a subcommand it performs the
// collection run in the current directory.
var RootCmd = &cobra.Command{
	Use:   "codecollect",
	Short: "codecollect flattens a directory tree into a single text file",
	Long: `codecollect walks the current directory, skips ignored folders and file
patterns, and concatenates the remaining text files into one output file with
a delimited header per file. Intended for code review snapshots and LLM
prompt preparation.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollect()
	},
}

// Execute parses flags and runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
