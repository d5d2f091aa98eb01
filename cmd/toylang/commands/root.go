// Package commands provides the CLI commands for the toylang tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nojima/toylang/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "toylang [file]",
	Short: "toylang interpreter",
	Long: `toylang is a small expression language with let bindings,
first-order functions, numbers and strings.

Usage:
  toylang                     Start the interactive REPL
  toylang file.toy            Run a file (shorthand for 'toylang run')
  toylang run -e '1 + 2'      Run an expression
  toylang tokens file.toy     Print the token stream
  toylang parse file.toy      Print the syntax tree
  toylang check a.toy b.toy   Report syntax errors
  toylang version             Print version`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runRepl(cmd, args)
		}
		return runRun(cmd, args)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.yaml (default $TOYLANG_HOME/config.yaml)")
	rootCmd.Flags().BoolVarP(&runPrintAll, "print-all", "a", false, "Print the value of every statement")
	rootCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Verbose output")
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
