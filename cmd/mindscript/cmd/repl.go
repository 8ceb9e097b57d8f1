package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/lexer"
	"github.com/mindscript-lang/mindscript/internal/parser"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive MindScript session",
	Long:  `Start an interactive MindScript REPL, the same one the bare command starts when given no file.`,
	Args:  cobra.NoArgs,
	RunE:  func(_ *cobra.Command, _ []string) error { return runRepl() },
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runRepl reads one expression per line and evaluates it against a
// single persistent environment, printing its str() form unless it's
// null. A parse or evaluation error is printed without ending the
// session (spec.md §6: "in REPL mode the host prints and continues").
func runRepl() error {
	it := newInterp()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Fprintln(os.Stderr, "mindscript REPL. Ctrl-D to exit.")
	for {
		fmt.Fprint(os.Stderr, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(os.Stderr)
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		l := lexer.New(line)
		p := parser.New(l)
		program := p.ParseProgram()
		if errs := p.Errors(); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e.Error())
			}
			continue
		}
		it.Source = line

		v, err := it.RunProgram(program)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Format(true))
			continue
		}
		if _, isNull := v.(runtime.Null); !isNull {
			if s, ok := it.RootEnv().Get("str"); ok {
				if rendered, callErr := it.Call(s, v); callErr == nil {
					fmt.Println(rendered.(runtime.Str).Value)
					continue
				}
			}
			fmt.Println(v.String())
		}
	}
}
