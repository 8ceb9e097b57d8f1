package cmd

import (
	"fmt"

	"github.com/mindscript-lang/mindscript/internal/builtins"
	"github.com/mindscript-lang/mindscript/internal/interp"
	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/oracle/stub"
	"github.com/spf13/cobra"
)

// Version information, overridable by build flags.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var strictOracle bool

var rootCmd = &cobra.Command{
	Use:   "mindscript [file]",
	Short: "MindScript interpreter",
	Long: `mindscript is a tree-walking interpreter for MindScript, a small
dynamically-typed language whose functions are all unary, curried, and
whose informal "oracle" literals resolve through a pluggable adapter.

With no file argument, mindscript starts an interactive REPL. Given a
file, it executes the file and exits.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRootCmd,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("mindscript version {{.Version}}\nCommit: %s\nBuilt:  %s\n", GitCommit, BuildDate))
	rootCmd.PersistentFlags().BoolVar(&strictOracle, "strict-oracle", false, "make the default stub oracle adapter raise OracleError instead of falling back to a zero value")
}

func runRootCmd(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runFile(args[0])
	}
	return runRepl()
}

// newRootEnv builds a root environment seeded with every builtin, ready
// to be handed to interp.New.
func newRootEnv() *runtime.Environment {
	root := runtime.NewEnvironment()
	builtins.Install(root)
	return root
}

// newAdapter returns the CLI's default oracle adapter. mindscript carries
// no model-backend client (spec.md §1 places that out of scope); stub
// answers from an oracle literal's own examples so the adapter boundary
// is still exercised end-to-end.
func newAdapter() runtime.OracleAdapter {
	return &stub.Adapter{Strict: strictOracle}
}

func newInterp() *interp.Interp {
	it := interp.New(newRootEnv())
	it.Adapter = newAdapter()
	return it
}
