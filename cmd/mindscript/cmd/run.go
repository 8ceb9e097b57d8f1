package cmd

import (
	"fmt"
	"os"

	"github.com/mindscript-lang/mindscript/internal/lexer"
	"github.com/mindscript-lang/mindscript/internal/parser"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a MindScript file or inline expression",
	Long: `Execute a MindScript program from a file or an inline expression.

Examples:
  mindscript run script.ms
  mindscript run -e 'println("hi")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRunCmd,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
}

func runRunCmd(_ *cobra.Command, args []string) error {
	if evalExpr != "" {
		return runSource(evalExpr, "<eval>")
	}
	if len(args) == 1 {
		return runFile(args[0])
	}
	return fmt.Errorf("either provide a file path or use -e for inline code")
}

func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return runSource(string(src), path)
}

func runSource(src, filename string) error {
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	it := newInterp()
	it.File = filename
	it.Source = src

	if _, err := it.RunProgram(program); err != nil {
		fmt.Fprintln(os.Stderr, err.Format(true))
		return fmt.Errorf("execution failed")
	}
	return nil
}
