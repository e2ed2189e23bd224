package cmd

import (
	"codecollect/pkg/collect"
	"codecollect/pkg/logging"
	"codecollect/pkg/version"
)

var collectArgs = collect.DefaultArguments()

func init() {
	flags := RootCmd.Flags()
	flags.StringVarP(&collectArgs.Directory, "dir", "d", collectArgs.Directory, "Directory to scan")
	flags.StringVarP(&collectArgs.Output, "output", "o", collectArgs.Output, "Destination file for the combined output")
	flags.StringVarP(&collectArgs.ConfigFile, "config", "c", collectArgs.ConfigFile, "Name of the ignore-config file in the scan root")
	flags.StringVarP(&collectArgs.Tree, "tree", "t", "", "Optional destination file for a directory tree rendering")
	flags.BoolVarP(&collectArgs.Verbose, "verbose", "v", false, "Enable per-entry debug logging")
}

// runCollect wires the parsed flags into the collection pipeline.
func runCollect() error {
	if collectArgs.Verbose {
		// Switch to the development config so debug lines become visible.
		if err := logging.Setup(true, "codecollect", version.Get().Version); err != nil {
			return err
		}
	}
	return collect.Execute(collectArgs, logging.Logger)
}
