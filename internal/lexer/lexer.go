// Package lexer implements the toylang tokenizer.
//
// Tokens are cut one at a time from the front of the remaining input. A
// Lexer wraps the cutter into a stream that skips whitespace, tracks byte
// offsets and stops for good at the first lexical error.
package lexer

import (
	"errors"
	"io"
	"iter"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nojima/toylang/internal/token"
	"github.com/nojima/toylang/toyerr"
)

var (
	reIdentifier  = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`)
	reNumber      = regexp.MustCompile(`^(0|[1-9][0-9]*)([.][0-9]+)?([eE][-+]?[0-9]+)?`)
	reWhitespaces = regexp.MustCompile(`^[\t\n\r ]+`)
)

var escapes = map[rune]rune{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Cut cuts a single token from the front of input and returns it together
// with the number of bytes it consumed. Leading whitespace is not skipped.
// Cut returns io.EOF when input is empty and a *toyerr.LexicalError (with
// offsets relative to input) when no token can be formed.
func Cut(input string) (token.Token, int, error) {
	if input == "" {
		return token.Token{}, 0, io.EOF
	}

	if k, ok := token.Punctuation[input[0]]; ok {
		return token.Simple(k), 1, nil
	}

	if m := reIdentifier.FindString(input); m != "" {
		if k, ok := token.Keywords[m]; ok {
			return token.Simple(k), len(m), nil
		}
		return token.NewIdentifier(m), len(m), nil
	}

	if m := reNumber.FindString(input); m != "" {
		// The pattern only admits valid decimal syntax; out-of-range values
		// saturate to ±Inf or 0 like any float literal.
		n, _ := strconv.ParseFloat(m, 64)
		return token.NewNumber(n), len(m), nil
	}

	if input[0] == '"' {
		return cutString(input)
	}

	c, _ := utf8.DecodeRuneInString(input)
	return token.Token{}, 0, toyerr.NewUnexpectedCharacter(0, c)
}

// cutString decodes a string literal starting at the opening quote. The
// consumed count is taken from the scan position since escapes are longer
// in the source than in the decoded text.
func cutString(input string) (token.Token, int, error) {
	var buf strings.Builder
	pos := 1
	for pos < len(input) {
		c, size := utf8.DecodeRuneInString(input[pos:])
		switch c {
		case '"':
			return token.NewString(buf.String()), pos + size, nil
		case '\\':
			pos += size
			if pos >= len(input) {
				return token.Token{}, 0, toyerr.NewUnexpectedEOF(0)
			}
			e, esize := utf8.DecodeRuneInString(input[pos:])
			r, ok := escapes[e]
			if !ok {
				return token.Token{}, 0, toyerr.NewUndefinedEscape(0, e)
			}
			buf.WriteRune(r)
			pos += esize
		default:
			// Copy raw bytes so invalid UTF-8 passes through untouched.
			buf.WriteString(input[pos : pos+size])
			pos += size
		}
	}
	return token.Token{}, 0, toyerr.NewUnexpectedEOF(0)
}

// Item is a token together with its half-open byte span [Start, End) in
// the source. The span does not include skipped whitespace.
type Item struct {
	Start int
	Tok   token.Token
	End   int
}

// Lexer produces the token stream of a source text. A Lexer can only be
// restarted by creating a new one over the same input.
type Lexer struct {
	input string
	pos   int
	done  bool
}

// New creates a Lexer over input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token. At the end of input it returns io.EOF. A
// lexical error is returned exactly once; every later call returns io.EOF.
func (l *Lexer) Next() (Item, error) {
	if l.done {
		return Item{}, io.EOF
	}

	start := l.pos
	if loc := reWhitespaces.FindStringIndex(l.input[start:]); loc != nil {
		start += loc[1]
	}

	tok, n, err := Cut(l.input[start:])
	if err != nil {
		l.done = true
		var le *toyerr.LexicalError
		if errors.As(err, &le) {
			le.Offset += start
		}
		return Item{}, err
	}

	l.pos = start + n
	return Item{Start: start, Tok: tok, End: l.pos}, nil
}

// All returns the remaining tokens as a sequence. A lexical error is
// yielded as the final element.
func (l *Lexer) All() iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		for {
			item, err := l.Next()
			if err == io.EOF {
				return
			}
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// Tokenize scans the whole input.
func Tokenize(input string) ([]Item, error) {
	var items []Item
	for item, err := range New(input).All() {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}
