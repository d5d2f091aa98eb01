package commands

import (
	"github.com/spf13/cobra"

	"github.com/nojima/toylang/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	Long: `Start an interactive session. Bindings persist between inputs; an
input that fails is discarded and the session continues with the last good
environment. Line history is kept in the configured history file.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return repl.Start(cfg)
}
