// Command scmread drives the scm lexer and reader: the interactive
// REPL and batch-file "external collaborator" that spec.md §6
// describes. It contains no evaluator of its own — there is none to
// drive — it only prints the datum stream.
package main

import (
	"fmt"
	"os"

	"github.com/knakk/scm/cmd/scmread/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
