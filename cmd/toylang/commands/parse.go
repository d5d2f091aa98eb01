package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nojima/toylang/internal/parser"
)

var parseExpression bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the syntax tree of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := readSources(args, parseExpression)
		if err != nil {
			return err
		}

		prog, err := parser.Parse(sources[0].text)
		if err != nil {
			return fmt.Errorf("%s: %w", sources[0].name, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), prog)
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "Interpret the argument as toylang source")
}
