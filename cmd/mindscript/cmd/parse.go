package cmd

import (
	"fmt"
	"os"

	"github.com/mindscript-lang/mindscript/internal/lexer"
	"github.com/mindscript-lang/mindscript/internal/parser"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse MindScript source and print the AST",
	Long:  `Parse a MindScript program and print each top-level expression's AST form, useful for debugging the parser.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline code instead of reading from a file")
}

func runParseCmd(_ *cobra.Command, args []string) error {
	src, err := sourceFor(parseEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	for _, e := range program.Exprs {
		fmt.Println(e.String())
	}
	return nil
}
