/*
File    : l/parser/parser_control.go
Author  : adapted from go-mix by Akash Maji
*/
package parser

import (
	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/lexer"
)

// parseBlock parses a `{ ... }` statement sequence. Entry: CurrToken is
// LEFT_BRACE. Exit: CurrToken is the matching RIGHT_BRACE, left
// unconsumed so callers can inspect what follows (an `else`, a return
// type on the enclosing construct, etc.) before advancing past it.
func (p *Parser) parseBlock() *ast.BlockExpr {
	block := &ast.BlockExpr{}
	p.advance()
	for p.CurrToken.Type != lexer.RIGHT_BRACE && p.CurrToken.Type != lexer.EOF_TYPE {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}
	return block
}

func (p *Parser) parseBlockExpr() ast.Expr {
	return p.parseBlock()
}

func (p *Parser) parseIfExpr() ast.Expr {
	p.advance() // past 'if', Curr = condition start
	cond := p.parseExpr(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	then := p.parseBlock()

	ifExpr := &ast.IfExpr{Condition: cond, Then: then}

	if p.NextToken.Type == lexer.ELSE_KEY {
		p.advance() // Curr = 'else'
		p.advance() // Curr = 'if' or '{'
		if p.CurrToken.Type == lexer.IF_KEY {
			ifExpr.Else = p.parseIfExpr()
		} else if p.CurrToken.Type == lexer.LEFT_BRACE {
			ifExpr.Else = p.parseBlock()
		} else {
			p.addError("expected 'if' or '{' after 'else', got %s", p.CurrToken.Type)
			return nil
		}
	}
	return ifExpr
}

func (p *Parser) parseWhileExpr() ast.Expr {
	p.advance() // past 'while'
	cond := p.parseExpr(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	body := p.parseBlock()
	return &ast.WhileExpr{Condition: cond, Body: body}
}

func (p *Parser) parseForExpr() ast.Expr {
	if !p.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	varName := p.CurrToken.Literal
	if !p.expectAdvance(lexer.IN_KEY) {
		return nil
	}
	p.advance() // Curr = iterable start
	iterable := p.parseExpr(LOWEST)
	if iterable == nil {
		return nil
	}
	if !p.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	body := p.parseBlock()
	return &ast.ForExpr{Var: varName, Iterable: iterable, Body: body}
}

func (p *Parser) parseMatchExpr() ast.Expr {
	p.advance() // past 'match'
	// A bare identifier directly followed by `{` is the scrutinee, not a
	// struct literal: the `{` opens the arm list.
	var scrutinee ast.Expr
	if p.CurrToken.Type == lexer.IDENTIFIER_ID && p.NextToken.Type == lexer.LEFT_BRACE {
		scrutinee = &ast.Identifier{Name: p.CurrToken.Literal}
	} else {
		scrutinee = p.parseExpr(LOWEST)
	}
	if scrutinee == nil {
		return nil
	}
	if !p.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	match := &ast.MatchExpr{Scrutinee: scrutinee}

	p.advance() // into arm list, or RIGHT_BRACE if empty
	for p.CurrToken.Type != lexer.RIGHT_BRACE && p.CurrToken.Type != lexer.EOF_TYPE {
		pattern := p.parsePattern()
		if pattern == nil {
			return nil
		}
		if !p.expectAdvance(lexer.FAT_ARROW_OP) {
			return nil
		}
		p.advance() // Curr = arm body start
		body := p.parseExpr(LOWEST)
		if body == nil {
			return nil
		}
		match.Arms = append(match.Arms, ast.MatchArm{Pattern: pattern, Body: body})

		if p.NextToken.Type == lexer.COMMA_DELIM {
			p.advance()
		}
		p.advance()
	}
	if p.CurrToken.Type != lexer.RIGHT_BRACE {
		p.addError("expected '}' to close match, got %s", p.CurrToken.Type)
		return nil
	}
	return match
}

// parsePattern parses one match-arm pattern. Entry/exit: CurrToken is the
// pattern's last token.
func (p *Parser) parsePattern() ast.Pattern {
	switch p.CurrToken.Type {
	case lexer.INT_LIT:
		v := p.parseIntLiteral()
		if v == nil {
			return nil
		}
		return &ast.LiteralPattern{Value: v}
	case lexer.FLOAT_LIT:
		v := p.parseFloatLiteral()
		if v == nil {
			return nil
		}
		return &ast.LiteralPattern{Value: v}
	case lexer.STRING_LIT:
		return &ast.LiteralPattern{Value: &ast.StringLiteral{Value: p.CurrToken.Literal}}
	case lexer.TRUE_KEY, lexer.FALSE_KEY:
		return &ast.LiteralPattern{Value: &ast.BoolLiteral{Value: p.CurrToken.Type == lexer.TRUE_KEY}}
	case lexer.NONE_KEY:
		return &ast.LiteralPattern{Value: &ast.NoneLiteral{}}
	case lexer.IDENTIFIER_ID:
		if p.CurrToken.Literal == "_" {
			return &ast.WildcardPattern{}
		}
		if p.NextToken.Type == lexer.COLON_COLON_OP {
			enumName := p.CurrToken.Literal
			p.advance() // Curr = '::'
			if !p.expectAdvance(lexer.IDENTIFIER_ID) {
				return nil
			}
			variant := p.CurrToken.Literal
			pat := &ast.EnumVariantPattern{Enum: enumName, Variant: variant}
			if p.NextToken.Type == lexer.LEFT_PAREN {
				p.advance() // Curr = '('
				if !p.expectAdvance(lexer.IDENTIFIER_ID) {
					return nil
				}
				binding := p.CurrToken.Literal
				pat.Binding = &binding
				if !p.expectAdvance(lexer.RIGHT_PAREN) {
					return nil
				}
			}
			return pat
		}
		return &ast.VariablePattern{Name: p.CurrToken.Literal}
	default:
		p.addError("unexpected token %s in pattern", p.CurrToken.Type)
		return nil
	}
}

// parseFunctionLiteral parses `fn [name] ( params ) [-> type] { body }`.
// The name is optional: present for `fn foo() {...}` declarations (parsed
// at statement position as an ExprStmt wrapping this literal, per the
// expression-oriented grammar), absent for an anonymous function value
// such as `let f = fn(x) { x }`.
func (p *Parser) parseFunctionLiteral() ast.Expr {
	fn := &ast.FunctionLiteral{}
	if p.NextToken.Type == lexer.IDENTIFIER_ID {
		p.advance()
		fn.Name = p.CurrToken.Literal
	}
	if !p.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	if p.NextToken.Type != lexer.RIGHT_PAREN {
		p.advance()
		fn.Params = append(fn.Params, p.parseParam())
		for p.NextToken.Type == lexer.COMMA_DELIM {
			p.advance()
			p.advance()
			fn.Params = append(fn.Params, p.parseParam())
		}
	}
	if !p.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if p.NextToken.Type == lexer.ARROW_OP {
		p.advance() // Curr = '->'
		p.advance() // Curr = return-type token
		fn.ReturnType = p.parseTypeExpr()
	}
	if !p.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	fn.Body = p.parseBlock()
	return fn
}

func (p *Parser) parseParam() ast.Param {
	param := ast.Param{Name: p.CurrToken.Literal}
	if p.NextToken.Type == lexer.COLON_DELIM {
		p.advance() // Curr = ':'
		p.advance() // Curr = type token
		param.Type = p.parseTypeExpr()
	}
	return param
}

// parseTypeExpr parses a type annotation. Entry/exit: CurrToken is the
// annotation's last token. Bare keyword types (int/float/string/bool) and
// named types (a bare identifier, for a struct or enum) are a single
// token; array types accept both the `array[T]` keyword form (consume
// `array`, then `[`, inner type, `]`) and the bracket-only `[T]` shorthand
// — the same array-of-T annotation either way.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	switch p.CurrToken.Type {
	case lexer.INT_TYPE_KEY:
		return &ast.TypeExpr{Kind: ast.TInt}
	case lexer.FLOAT_TYPE_KEY:
		return &ast.TypeExpr{Kind: ast.TFloat}
	case lexer.STRING_TYPE_KEY:
		return &ast.TypeExpr{Kind: ast.TString}
	case lexer.BOOL_TYPE_KEY:
		return &ast.TypeExpr{Kind: ast.TBool}
	case lexer.NONE_KEY:
		return &ast.TypeExpr{Kind: ast.TNone}
	case lexer.IDENTIFIER_ID:
		return &ast.TypeExpr{Kind: ast.TNamed, Name: p.CurrToken.Literal}
	case lexer.ARRAY_TYPE_KEY:
		if !p.expectAdvance(lexer.LEFT_BRACKET) {
			return nil
		}
		return p.parseBracketedArrayType()
	case lexer.LEFT_BRACKET:
		return p.parseBracketedArrayType()
	default:
		p.addError("expected a type, got %s", p.CurrToken.Type)
		return nil
	}
}

// parseBracketedArrayType parses the `[T]` element-type bracket shared by
// both array-type spellings. Entry: CurrToken is LEFT_BRACKET.
func (p *Parser) parseBracketedArrayType() *ast.TypeExpr {
	p.advance() // Curr = element type token
	elem := p.parseTypeExpr()
	if elem == nil {
		return nil
	}
	if !p.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}
	return &ast.TypeExpr{Kind: ast.TArray, ElemType: elem}
}
