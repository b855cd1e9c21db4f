/*
File    : l/parser/parser.go
Author  : adapted from go-mix by Akash Maji
*/

// Package parser implements a hand-written recursive-descent parser with
// Pratt-style precedence climbing for expressions, grounded in the
// teacher's CurrToken/NextToken two-token-lookahead shape
// (parser/parser.go, parser_precedence.go) and its collect-don't-panic
// error handling. The grammar itself — declarations, assignment
// lookahead, struct-literal-vs-block ambiguity, for/match forms — follows
// the language this parser targets rather than the teacher's GoMix
// grammar.
package parser

import (
	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/lexer"
)

// Precedence levels, low to high: or, and, equality, comparison, term,
// factor, unary, postfix (call/index/field access), primary.
const (
	LOWEST = iota
	OR
	AND
	EQUALITY
	COMPARISON
	TERM
	FACTOR
	UNARY
	POSTFIX
)

func precedenceOf(t lexer.TokenType) int {
	switch t {
	case lexer.OR_OP:
		return OR
	case lexer.AND_OP:
		return AND
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY
	case lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		return COMPARISON
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return TERM
	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return FACTOR
	case lexer.LEFT_PAREN, lexer.LEFT_BRACKET, lexer.DOT_OP:
		return POSTFIX
	default:
		return LOWEST
	}
}

// Parser holds the lexer, the two-token lookahead, and the accumulated
// parse errors. It never panics on malformed input; parse functions
// return nil and record an error, letting the caller decide whether to
// keep going.
type Parser struct {
	Lex       *lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token
	Errors    []*lerr.Error
}

// NewParser creates a Parser over src and primes the two-token lookahead.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	p := &Parser{Lex: &lex}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.CurrToken = p.NextToken
	p.NextToken = p.Lex.NextToken()
}

func (p *Parser) addError(format string, a ...interface{}) {
	p.Errors = append(p.Errors, lerr.NewAt(lerr.Parse, p.CurrToken.Line, p.CurrToken.Column, format, a...))
}

// HasErrors reports whether any parse errors were recorded.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// expectNext reports (without consuming) whether NextToken matches want,
// recording an error if not.
func (p *Parser) expectNext(want lexer.TokenType) bool {
	if p.NextToken.Type != want {
		p.addError("expected %s, got %s", want, p.NextToken.Type)
		return false
	}
	return true
}

// expectAdvance checks NextToken against want and advances onto it if it
// matches.
func (p *Parser) expectAdvance(want lexer.TokenType) bool {
	if !p.expectNext(want) {
		return false
	}
	p.advance()
	return true
}

// Parse parses the whole token stream into a Program.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for p.CurrToken.Type != lexer.EOF_TYPE {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.advance()
	}
	return prog
}
