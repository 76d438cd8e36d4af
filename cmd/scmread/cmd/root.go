package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scmread",
	Short: "Read Scheme source into located datums",
	Long: `scmread drives the scm lexer and reader over Scheme source text.

It has no evaluator: it is the external REPL/batch-reader collaborator
described alongside the scm package's lexer and datum reader, printing
the datum stream it reads rather than evaluating it.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("stop-on-error", false, "stop reading the current input on the first error instead of reporting it and continuing")
}
