package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "typegraph",
		Short: "Inspect type annotations as explorable graphs",
		Long: `typegraph parses a small annotation expression language, runs the
inspector over it and renders the resulting type graph. It is a debugging
surface for the library, not a general type checker.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(kindsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
