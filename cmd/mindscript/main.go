// Command mindscript is the reference MindScript CLI: a REPL when given
// no file, batch execution when given one, plus lex/parse debug dumps.
package main

import (
	"fmt"
	"os"

	"github.com/mindscript-lang/mindscript/cmd/mindscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
