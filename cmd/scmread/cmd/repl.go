package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/knakk/scm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read Scheme forms from stdin, one line at a time",
	Long: `repl implements the read-print loop described alongside the scm
package: each input line is pushed through a fresh lexer+reader pair,
and every datum it yields is printed with a 0-based index. EOF on
stdin ends the loop with exit code 0.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		lx := scm.NewLexerString(scanner.Text())
		rd := scm.NewReader(lx)

		for idx := 0; ; idx++ {
			d, err := rd.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				fmt.Fprintf(out, "%d: error: %s\n", idx, err)
				if stopOnError {
					break
				}
				continue
			}
			fmt.Fprintf(out, "%d: %s\n", idx, d.Value)
		}
		fmt.Fprint(out, "> ")
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
