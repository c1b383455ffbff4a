// panectl is a headless CLI for inspecting and driving an editor.Root: it
// boots a Root with the built-in reference modules, then either prints its
// registry's entries or dispatches a single command against it and reports
// the resulting status. It generalizes cmd/hivectl/root.go's single
// package-level cobra root (global flags, one process-wide command tree)
// from operating on one hive file to operating on one editor.Root.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:     "panectl",
	Short:   "Inspect and drive a panekit editor root from the command line",
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	execute()
}
