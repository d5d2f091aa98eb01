// Package token defines the lexical units of toylang.
package token

import (
	"fmt"
	"strconv"
)

// Kind identifies the type of a token.
type Kind int

const (
	// Punctuation
	Semicolon Kind = iota // ;
	Equal                 // =
	Plus                  // +
	Minus                 // -
	Asterisk              // *
	Slash                 // /
	LParen                // (
	RParen                // )
	Comma                 // ,

	// Keywords
	Let
	In
	Def
	If
	Then
	Else

	// Literals
	Number
	String
	Identifier
)

var kindNames = [...]string{
	Semicolon:  "';'",
	Equal:      "'='",
	Plus:       "'+'",
	Minus:      "'-'",
	Asterisk:   "'*'",
	Slash:      "'/'",
	LParen:     "'('",
	RParen:     "')'",
	Comma:      "','",
	Let:        "'let'",
	In:         "'in'",
	Def:        "'def'",
	If:         "'if'",
	Then:       "'then'",
	Else:       "'else'",
	Number:     "number",
	String:     "string",
	Identifier: "identifier",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Punctuation maps each single-character token to its kind.
var Punctuation = map[byte]Kind{
	';': Semicolon,
	'=': Equal,
	'+': Plus,
	'-': Minus,
	'*': Asterisk,
	'/': Slash,
	'(': LParen,
	')': RParen,
	',': Comma,
}

// Keywords maps reserved words to their kinds.
var Keywords = map[string]Kind{
	"let":  Let,
	"in":   In,
	"def":  Def,
	"if":   If,
	"then": Then,
	"else": Else,
}

// Token is a single lexical unit. Tokens carry no position and compare
// with ==.
type Token struct {
	Kind Kind
	// Num is the payload of a Number token.
	Num float64
	// Text is the decoded payload of a String token or the name of an
	// Identifier token.
	Text string
}

// Simple returns a token of a payload-free kind.
func Simple(k Kind) Token {
	return Token{Kind: k}
}

// NewNumber returns a Number token.
func NewNumber(n float64) Token {
	return Token{Kind: Number, Num: n}
}

// NewString returns a String token carrying already-decoded text.
func NewString(s string) Token {
	return Token{Kind: String, Text: s}
}

// NewIdentifier returns an Identifier token.
func NewIdentifier(name string) Token {
	return Token{Kind: Identifier, Text: name}
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%s)", strconv.FormatFloat(t.Num, 'g', -1, 64))
	case String:
		return fmt.Sprintf("String(%s)", strconv.Quote(t.Text))
	case Identifier:
		return fmt.Sprintf("Identifier(%s)", t.Text)
	default:
		return t.Kind.String()
	}
}
