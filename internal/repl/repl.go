// Package repl runs the interactive toylang loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/nojima/toylang/internal/config"
	"github.com/nojima/toylang/internal/interp"
	"github.com/nojima/toylang/internal/parser"
	"github.com/nojima/toylang/internal/value"
	"github.com/nojima/toylang/toyerr"
)

const help = `Enter statements separated by ';'. Meta commands:
  :env    list bindings
  :reset  drop all bindings
  :help   show this message
  :quit   leave the REPL`

// LineReader reads one line of input per prompt. *liner.State implements it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// REPL evaluates lines read from a LineReader in a single session.
type REPL struct {
	cfg     *config.Config
	session *interp.Session
	out     io.Writer
	errOut  io.Writer
}

// New creates a REPL with a fresh session.
func New(cfg *config.Config, out, errOut io.Writer) *REPL {
	return &REPL{
		cfg:     cfg,
		session: interp.NewSession(interp.NewDefault()),
		out:     out,
		errOut:  errOut,
	}
}

// Start runs the REPL on the terminal, keeping line history in the
// configured history file.
func Start(cfg *config.Config) error {
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	New(cfg, os.Stdout, os.Stderr).Run(ln)
	return nil
}

// Run reads and evaluates input until end of input or :quit.
func (r *REPL) Run(in LineReader) {
	for {
		src, ok := r.read(in)
		if !ok {
			fmt.Fprintln(r.out)
			return
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		in.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if r.handle(src) {
			return
		}
	}
}

// read collects lines until they form a complete program or fail for a
// reason other than running out of input. Ctrl-C drops the pending lines.
func (r *REPL) read(in LineReader) (string, bool) {
	var b strings.Builder
	for {
		prompt := r.cfg.Prompt
		if b.Len() > 0 {
			prompt = r.cfg.ContinuationPrompt
		}

		line, err := in.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if isMeta(src) {
			return src, true
		}
		if _, err := parser.Parse(src); err != nil && toyerr.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

func isMeta(src string) bool {
	return strings.HasPrefix(strings.TrimSpace(src), ":")
}

// handle evaluates one complete input. It reports whether the REPL should
// stop.
func (r *REPL) handle(src string) bool {
	if isMeta(src) {
		return r.meta(strings.ToLower(strings.TrimSpace(src)))
	}

	values, err := r.session.Eval(src)
	if err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return false
	}
	if len(values) == 0 {
		return false
	}
	if !r.cfg.PrintAll {
		values = values[len(values)-1:]
	}
	for _, v := range values {
		fmt.Fprintf(r.out, "=> %s\n", v)
	}
	return false
}

func (r *REPL) meta(cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":reset":
		r.session.Reset()
	case ":env":
		env := r.session.Env()
		for _, name := range env.Names() {
			v, _ := env.Lookup(name)
			fmt.Fprintf(r.out, "%s : %s = %s\n", name, value.TypeName(v), v)
		}
	case ":help":
		fmt.Fprintln(r.out, help)
	default:
		fmt.Fprintf(r.errOut, "unknown command %q. Type :help for a list.\n", cmd)
	}
	return false
}
