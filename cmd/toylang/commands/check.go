package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nojima/toylang/internal/parser"
	"github.com/nojima/toylang/toyerr"
)

var checkCmd = &cobra.Command{
	Use:   "check files...",
	Short: "Report lexical and syntax errors without evaluating",
	Long: `Check parses every file and reports all failures together. Nothing
is evaluated, so undefined names and type errors are not detected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var errs []error
		out := cmd.OutOrStdout()
		for _, path := range args {
			sources, err := readSources([]string{path}, false)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if _, err := parser.Parse(sources[0].text); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
				continue
			}
			fmt.Fprintf(out, "ok\t%s\n", path)
		}

		if len(errs) > 0 {
			return &toyerr.MultiError{Errors: errs}
		}
		return nil
	},
}
