package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nojima/toylang/internal/lexer"
)

var tokensExpression bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a file",
	Long: `Tokens prints one line per token with its byte span. Scanning stops at
the first lexical error, which is reported after the tokens read so far.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := readSources(args, tokensExpression)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for item, err := range lexer.New(sources[0].text).All() {
			if err != nil {
				return fmt.Errorf("%s: %w", sources[0].name, err)
			}
			fmt.Fprintf(out, "%d..%d\t%s\n", item.Start, item.End, item.Tok)
		}
		return nil
	},
}

func init() {
	tokensCmd.Flags().BoolVarP(&tokensExpression, "expression", "e", false, "Interpret the argument as toylang source")
}
