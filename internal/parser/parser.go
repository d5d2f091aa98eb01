// Package parser implements a recursive-descent parser that turns the
// lexer's token stream into a toylang program.
package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/nojima/toylang/internal/ast"
	"github.com/nojima/toylang/internal/lexer"
	"github.com/nojima/toylang/internal/token"
	"github.com/nojima/toylang/toyerr"
)

type parser struct {
	src   string
	items []lexer.Item
	pos   int
}

// Parse tokenizes src and parses it into a program. Lexical errors are
// returned unchanged; grammar violations are *toyerr.SyntaxError.
func Parse(src string) (ast.Program, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

// ParseExpr parses src as a single expression.
func ParseExpr(src string) (ast.Expr, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.unexpected("end of input")
	}
	return e, nil
}

func newParser(src string) (*parser, error) {
	items, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return &parser{src: src, items: items}, nil
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.items)
}

func (p *parser) peek() (token.Kind, bool) {
	if p.atEnd() {
		return 0, false
	}
	return p.items[p.pos].Tok.Kind, true
}

func (p *parser) at(k token.Kind) bool {
	got, ok := p.peek()
	return ok && got == k
}

func (p *parser) advance() lexer.Item {
	it := p.items[p.pos]
	p.pos++
	return it
}

func (p *parser) expect(k token.Kind) (lexer.Item, error) {
	if !p.at(k) {
		return lexer.Item{}, p.unexpected(k.String())
	}
	return p.advance(), nil
}

func (p *parser) expectIdent() (string, error) {
	it, err := p.expect(token.Identifier)
	if err != nil {
		return "", err
	}
	return it.Tok.Text, nil
}

// unexpected reports the current token, or the end of input, as not being
// what the grammar wanted.
func (p *parser) unexpected(want string) error {
	if p.atEnd() {
		line, col := p.position(len(p.src))
		return toyerr.NewIncompleteError(line, col, fmt.Sprintf("expected %s, got end of input", want))
	}
	it := p.items[p.pos]
	line, col := p.position(it.Start)
	return toyerr.NewSyntaxError(line, col, fmt.Sprintf("expected %s, got %s", want, p.src[it.Start:it.End]))
}

// position converts a byte offset into a 1-based line and rune column.
func (p *parser) position(offset int) (int, int) {
	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if p.src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, utf8.RuneCountInString(p.src[lineStart:offset]) + 1
}

func (p *parser) parseProgram() (ast.Program, error) {
	prog := ast.Program{}
	for !p.atEnd() {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog = append(prog, s)
		if p.atEnd() {
			break
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
	}
	return prog, nil
}

func (p *parser) parseStmt() (ast.Stmt, error) {
	k, _ := p.peek()
	switch k {
	case token.Def:
		return p.parseDef()
	case token.Let:
		p.advance()
		name, bound, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		if !p.at(token.In) {
			return &ast.LetStmt{Name: name, Value: bound}, nil
		}
		p.advance()
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{X: &ast.Let{Name: name, Bound: bound, Body: body}}, nil
	}

	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: e}, nil
}

func (p *parser) parseDef() (ast.Stmt, error) {
	p.advance() // def
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	params := []string{}
	if !p.at(token.RParen) {
		for {
			param, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Def{Name: name, Params: params, Body: body}, nil
}

// parseBinding parses `name = expr` after a let keyword.
func (p *parser) parseBinding() (string, ast.Expr, error) {
	name, err := p.expectIdent()
	if err != nil {
		return "", nil, err
	}
	if _, err := p.expect(token.Equal); err != nil {
		return "", nil, err
	}
	bound, err := p.parseExpr()
	if err != nil {
		return "", nil, err
	}
	return name, bound, nil
}

func (p *parser) parseExpr() (ast.Expr, error) {
	k, _ := p.peek()
	switch k {
	case token.Let:
		p.advance()
		name, bound, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.In); err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Let{Name: name, Bound: bound, Body: body}, nil

	case token.If:
		p.advance()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Then); err != nil {
			return nil, err
		}
		then, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Else); err != nil {
			return nil, err
		}
		els, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.If{Cond: cond, Then: then, Else: els}, nil
	}
	return p.parseAdditive()
}

func (p *parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.at(token.Plus):
			op = ast.Add
		case p.at(token.Minus):
			op = ast.Sub
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.at(token.Asterisk):
			op = ast.Mul
		case p.at(token.Slash):
			op = ast.Div
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (ast.Expr, error) {
	if p.at(token.Minus) {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.Neg, Operand: operand}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (ast.Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.at(token.LParen) {
		p.advance()
		args := []ast.Expr{}
		if !p.at(token.RParen) {
			for {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.at(token.Comma) {
					break
				}
				p.advance()
			}
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		e = &ast.Apply{Func: e, Args: args}
	}
	return e, nil
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	k, ok := p.peek()
	if !ok {
		return nil, p.unexpected("expression")
	}
	switch k {
	case token.Number:
		return &ast.Number{Value: p.advance().Tok.Num}, nil
	case token.String:
		return &ast.String{Value: p.advance().Tok.Text}, nil
	case token.Identifier:
		return &ast.Variable{Name: p.advance().Tok.Text}, nil
	case token.LParen:
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, p.unexpected("expression")
}
