package lexer

import (
	"io"
	"math"
	"testing"

	"github.com/nojima/toylang/internal/token"
	"github.com/nojima/toylang/toyerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(items []Item) []token.Kind {
	out := make([]token.Kind, len(items))
	for i, it := range items {
		out[i] = it.Tok.Kind
	}
	return out
}

func TestCutPunctuation(t *testing.T) {
	for c, k := range token.Punctuation {
		tok, n, err := Cut(string(c) + "rest")
		require.NoError(t, err)
		assert.Equal(t, token.Simple(k), tok)
		assert.Equal(t, 1, n)
	}
}

func TestCutIdentifiersAndKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  token.Token
		n     int
	}{
		{"let", token.Simple(token.Let), 3},
		{"in", token.Simple(token.In), 2},
		{"def", token.Simple(token.Def), 3},
		{"if", token.Simple(token.If), 2},
		{"then", token.Simple(token.Then), 4},
		{"else", token.Simple(token.Else), 4},
		{"letter", token.NewIdentifier("letter"), 6},
		{"inx = 1", token.NewIdentifier("inx"), 3},
		{"_foo_1+2", token.NewIdentifier("_foo_1"), 6},
		{"Bar", token.NewIdentifier("Bar"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok, n, err := Cut(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tok)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestCutNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		n     int
	}{
		{"0", 0, 1},
		{"1", 1, 1},
		{"10", 10, 2},
		{"3.14", 3.14, 4},
		{"1e10", 1e10, 4},
		{"1E10", 1e10, 4},
		{"2.5e-3", 2.5e-3, 6},
		{"6e+2", 600, 4},
		{"0123", 0, 1},
		{"1.", 1, 1},
		{"1.5.2", 1.5, 3},
		{"7e", 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok, n, err := Cut(tt.input)
			require.NoError(t, err)
			assert.Equal(t, token.NewNumber(tt.want), tok)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestCutNumberOverflowSaturates(t *testing.T) {
	tok, n, err := Cut("1e400")
	require.NoError(t, err)
	assert.True(t, math.IsInf(tok.Num, 1))
	assert.Equal(t, 5, n)
}

func TestCutStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		n     int
	}{
		{"empty", `""`, "", 2},
		{"plain", `"abc" rest`, "abc", 5},
		{"escapes", `"a\tb\"c"`, "a\tb\"c", 9},
		{"all escapes", `"\"\\\/\n\r\t"`, "\"\\/\n\r\t", 14},
		{"utf8", `"héllo"`, "héllo", 8},
		{"newline inside", "\"a\nb\"", "a\nb", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, n, err := Cut(tt.input)
			require.NoError(t, err)
			assert.Equal(t, token.NewString(tt.want), tok)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestCutErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
		char  rune
	}{
		{"unexpected character", "$x", toyerr.ErrUnexpectedCharacter, '$'},
		{"unexpected multibyte character", "λx", toyerr.ErrUnexpectedCharacter, 'λ'},
		{"dot", ".5", toyerr.ErrUnexpectedCharacter, '.'},
		{"unterminated string", `"abc`, toyerr.ErrUnexpectedEOF, 0},
		{"trailing backslash", `"abc\`, toyerr.ErrUnexpectedEOF, 0},
		{"undefined escape", `"a\qb"`, toyerr.ErrUndefinedEscape, 'q'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Cut(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			var le *toyerr.LexicalError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.char, le.Char)
		})
	}
}

func TestCutEOF(t *testing.T) {
	_, n, err := Cut("")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 0, n)
}

func TestTokenize(t *testing.T) {
	items, err := Tokenize("let x = 1 + 2;\n\tx * 3")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.Let, token.Identifier, token.Equal, token.Number, token.Plus, token.Number, token.Semicolon,
		token.Identifier, token.Asterisk, token.Number,
	}, kinds(items))
	assert.Equal(t, Item{Start: 0, Tok: token.Simple(token.Let), End: 3}, items[0])
	assert.Equal(t, Item{Start: 16, Tok: token.NewIdentifier("x"), End: 17}, items[7])
}

func TestTokenizeEmptyAndBlank(t *testing.T) {
	items, err := Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = Tokenize(" \t\r\n ")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRelexSpan(t *testing.T) {
	src := `def f(a, b) = "x\ty" * a / 2.5e1; f(3, -0.5)`
	items, err := Tokenize(src)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	for _, it := range items {
		tok, n, err := Cut(src[it.Start:it.End])
		require.NoError(t, err)
		assert.Equal(t, it.Tok, tok)
		assert.Equal(t, it.End-it.Start, n)
	}
}

func TestLexerStopsAfterError(t *testing.T) {
	l := New("1 + @ 2")

	item, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, token.NewNumber(1), item.Tok)

	_, err = l.Next()
	require.NoError(t, err)

	_, err = l.Next()
	var le *toyerr.LexicalError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, '@', le.Char)
	assert.Equal(t, 4, le.Offset)

	_, err = l.Next()
	assert.Equal(t, io.EOF, err)
	_, err = l.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLexerErrorOffsetForString(t *testing.T) {
	_, err := Tokenize(`x + "ab\q"`)
	var le *toyerr.LexicalError
	require.ErrorAs(t, err, &le)
	assert.ErrorIs(t, err, toyerr.ErrUndefinedEscape)
	assert.Equal(t, 4, le.Offset)
}

func TestAllYieldsErrorLast(t *testing.T) {
	var got []token.Kind
	var errs []error
	for item, err := range New("a b \"open").All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, item.Tok.Kind)
	}
	assert.Equal(t, []token.Kind{token.Identifier, token.Identifier}, got)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], toyerr.ErrUnexpectedEOF)
}

func TestAllStopsWhenConsumerBreaks(t *testing.T) {
	l := New("a b c")
	for range l.All() {
		break
	}
	item, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, token.NewIdentifier("b"), item.Tok)
}
