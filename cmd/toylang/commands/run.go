package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nojima/toylang/internal/eval"
	"github.com/nojima/toylang/internal/interp"
	"github.com/nojima/toylang/internal/value"
)

var (
	runExpression bool
	runPrintAll   bool
	runVerbose    bool
)

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Run toylang code",
	Long: `Run evaluates toylang files, or expressions given on the command line,
and prints the value of the last statement of each.

Files share one environment: bindings made by a file are visible to the
files after it.

Examples:
  toylang run prog.toy             # Run a file
  toylang run -e 'let x = 2; x*3'  # Run an expression
  toylang run -a prog.toy          # Print every statement's value
  toylang run -v prog.toy          # Verbose output`,
	Args: cobra.ArbitraryArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false, "Interpret arguments as toylang source")
	runCmd.Flags().BoolVarP(&runPrintAll, "print-all", "a", false, "Print the value of every statement")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Verbose output")
}

func runRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("run requires at least one file or -e expression")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	printAll := runPrintAll || cfg.PrintAll
	logger := newLogger(cmd, runVerbose)

	sources, err := readSources(args, runExpression)
	if err != nil {
		return err
	}

	in := interp.NewDefault()
	env := eval.NewEnv()
	out := cmd.OutOrStdout()
	for _, src := range sources {
		logger.Printf("running %s (%d bytes)", src.name, len(src.text))

		values, next, err := in.RunAll(env, src.text)
		if err != nil {
			return fmt.Errorf("%s: %w", src.name, err)
		}
		env = next
		logger.Printf("%s: %d statement(s), %d binding(s)", src.name, len(values), env.Len())

		if len(values) == 0 {
			values = []value.Value{value.Unit{}}
		}
		if !printAll {
			values = values[len(values)-1:]
		}
		for _, v := range values {
			fmt.Fprintln(out, v)
		}
	}
	return nil
}
