// Command wrapctl inspects the campaign rules offline and drives a running
// console from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wrapctl",
		Short:         "wrap-advertising console tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		transitionsCommand(),
		quoteCommand(),
		campaignCommand(),
	)
	return rootCmd
}
