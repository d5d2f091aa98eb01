package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

type source struct {
	name string
	text string
}

// readSources treats args as file paths, or as source text when asExpr is
// set.
func readSources(args []string, asExpr bool) ([]source, error) {
	sources := make([]source, len(args))
	for i, arg := range args {
		if asExpr {
			sources[i] = source{name: fmt.Sprintf("<expr %d>", i+1), text: arg}
			continue
		}
		b, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		sources[i] = source{name: arg, text: string(b)}
	}
	return sources, nil
}

// newLogger returns a logger writing to the command's stderr, or one that
// discards everything unless verbose is set.
func newLogger(cmd *cobra.Command, verbose bool) *log.Logger {
	out := cmd.ErrOrStderr()
	if !verbose {
		out = io.Discard
	}
	return log.New(out, "toylang: ", 0)
}
