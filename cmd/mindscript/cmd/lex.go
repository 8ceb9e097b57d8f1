package cmd

import (
	"fmt"
	"os"

	"github.com/mindscript-lang/mindscript/internal/lexer"
	"github.com/mindscript-lang/mindscript/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEval    string
	lexShowPos bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a MindScript file or expression",
	Long:  `Tokenize a MindScript program and print the resulting tokens, useful for debugging the lexer.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLexCmd,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
}

func runLexCmd(_ *cobra.Command, args []string) error {
	src, err := sourceFor(lexEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(src)
	for {
		tok := l.NextToken()
		if lexShowPos {
			fmt.Printf("[%-10s] %q @%d:%d\n", tok.Kind, tok.Literal, tok.Pos.Line, tok.Pos.Column)
		} else {
			fmt.Printf("[%-10s] %q\n", tok.Kind, tok.Literal)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	for _, e := range l.Errors() {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	return nil
}

func sourceFor(inline string, args []string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(b), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e for inline code")
}
