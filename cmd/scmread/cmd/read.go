package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/knakk/scm"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read [file]",
	Short: "Batch-read every datum in a file",
	Long: `read parses an entire file as a sequence of top-level datums and
prints each one with a 0-based index, halting at the first error (a
batch read has no line boundary to resume from the way repl does).

This mirrors the non-interactive entry point the original
implementation's "examples/cli.rs" ships alongside its interactive
mode.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	lx := scm.NewLexer([]rune(string(data)))
	rd := scm.NewReader(lx)
	out := cmd.OutOrStdout()

	for idx := 0; ; idx++ {
		d, err := rd.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(out, "%d: %s\n", idx, d.Value)
	}
}
