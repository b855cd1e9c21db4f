/*
File    : l/parser/parser_expr.go
Author  : adapted from go-mix by Akash Maji
*/
package parser

import (
	"strconv"

	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/lexer"
)

// parseExpr climbs precedence starting from a parsed prefix/primary,
// consuming infix and postfix operators whose precedence exceeds minPrec.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	return p.continueExpr(left, minPrec)
}

// continueExpr resumes precedence climbing from an already-parsed operand.
// It exists so statement-level code that has manually consumed the first
// few tokens of an expression (the `ident.field` lookahead in
// parseIdentDotStatement) can hand off to the same climbing loop instead
// of re-parsing from scratch.
func (p *Parser) continueExpr(left ast.Expr, minPrec int) ast.Expr {
	for precedenceOf(p.NextToken.Type) > minPrec {
		p.advance()
		left = p.parseInfix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expr {
	switch p.CurrToken.Type {
	case lexer.INT_LIT:
		return p.parseIntLiteral()
	case lexer.FLOAT_LIT:
		return p.parseFloatLiteral()
	case lexer.STRING_LIT:
		return &ast.StringLiteral{Value: p.CurrToken.Literal, Interpolated: p.CurrToken.Interpolated}
	case lexer.TRUE_KEY, lexer.FALSE_KEY:
		return &ast.BoolLiteral{Value: p.CurrToken.Type == lexer.TRUE_KEY}
	case lexer.NONE_KEY:
		return &ast.NoneLiteral{}
	case lexer.LEFT_PAREN:
		return p.parseParenExpr()
	case lexer.LEFT_BRACKET:
		return p.parseArrayLiteral()
	case lexer.NOT_OP, lexer.MINUS_OP:
		return p.parseUnaryExpr()
	case lexer.IDENTIFIER_ID:
		return p.parseIdentifierOrStructOrEnum()
	case lexer.IF_KEY:
		return p.parseIfExpr()
	case lexer.WHILE_KEY:
		return p.parseWhileExpr()
	case lexer.FOR_KEY:
		return p.parseForExpr()
	case lexer.MATCH_KEY:
		return p.parseMatchExpr()
	case lexer.LEFT_BRACE:
		return p.parseBlockExpr()
	case lexer.FN_KEY:
		return p.parseFunctionLiteral()
	default:
		p.addError("unexpected token %s in expression", p.CurrToken.Type)
		return nil
	}
}

func (p *Parser) parseInfix(left ast.Expr) ast.Expr {
	switch p.CurrToken.Type {
	case lexer.LEFT_PAREN:
		return p.parseCallExpr(left)
	case lexer.LEFT_BRACKET:
		return p.parseIndexExpr(left)
	case lexer.DOT_OP:
		return p.parseFieldAccess(left)
	default:
		return p.parseBinaryExpr(left)
	}
}

func (p *Parser) parseIntLiteral() ast.Expr {
	val, err := strconv.ParseInt(p.CurrToken.Literal, 10, 64)
	if err != nil {
		p.addError("invalid integer literal: %s", p.CurrToken.Literal)
		return nil
	}
	return &ast.IntLiteral{Value: val}
}

func (p *Parser) parseFloatLiteral() ast.Expr {
	val, err := strconv.ParseFloat(p.CurrToken.Literal, 64)
	if err != nil {
		p.addError("invalid float literal: %s", p.CurrToken.Literal)
		return nil
	}
	return &ast.FloatLiteral{Value: val}
}

func (p *Parser) parseParenExpr() ast.Expr {
	p.advance()
	expr := p.parseExpr(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	arr := &ast.ArrayLiteral{}
	if p.NextToken.Type == lexer.RIGHT_BRACKET {
		p.advance()
		return arr
	}
	p.advance()
	arr.Elements = append(arr.Elements, p.parseExpr(LOWEST))
	for p.NextToken.Type == lexer.COMMA_DELIM {
		p.advance()
		p.advance()
		arr.Elements = append(arr.Elements, p.parseExpr(LOWEST))
	}
	if !p.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}
	return arr
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	op := p.CurrToken.Literal
	p.advance()
	right := p.parseExpr(UNARY)
	if right == nil {
		return nil
	}
	return &ast.UnaryExpr{Op: op, Right: right}
}

func (p *Parser) parseBinaryExpr(left ast.Expr) ast.Expr {
	op := p.CurrToken.Literal
	prec := precedenceOf(p.CurrToken.Type)
	p.advance()
	right := p.parseExpr(prec)
	if right == nil {
		return nil
	}
	return &ast.BinaryExpr{Op: op, Left: left, Right: right}
}

// parseIdentifierOrStructOrEnum disambiguates a leading identifier into a
// plain variable reference, a struct literal (identifier directly
// followed by `{`), or an enum-variant construction (identifier followed
// by `::`). The struct-literal reading is preferred unconditionally
// whenever `{` follows, even inside if/while/for headers where that
// reading can misfire against a following block — this is a deliberate,
// narrow ambiguity, not a bug.
func (p *Parser) parseIdentifierOrStructOrEnum() ast.Expr {
	name := p.CurrToken.Literal
	if p.NextToken.Type == lexer.LEFT_BRACE {
		p.advance()
		return p.parseStructLiteral(name)
	}
	if p.NextToken.Type == lexer.COLON_COLON_OP {
		p.advance()
		if !p.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		variant := p.CurrToken.Literal
		expr := &ast.EnumVariantExpr{Enum: name, Variant: variant}
		if p.NextToken.Type == lexer.LEFT_PAREN {
			p.advance()
			p.advance()
			expr.Data = p.parseExpr(LOWEST)
			if !p.expectAdvance(lexer.RIGHT_PAREN) {
				return nil
			}
		}
		return expr
	}
	return &ast.Identifier{Name: name}
}

func (p *Parser) parseStructLiteral(name string) ast.Expr {
	lit := &ast.StructLiteral{Name: name}
	if p.NextToken.Type == lexer.RIGHT_BRACE {
		p.advance()
		return lit
	}
	for {
		if !p.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		field := p.CurrToken.Literal
		if !p.expectAdvance(lexer.COLON_DELIM) {
			return nil
		}
		p.advance()
		val := p.parseExpr(LOWEST)
		if val == nil {
			return nil
		}
		lit.Fields = append(lit.Fields, ast.FieldInit{Name: field, Value: val})
		if p.NextToken.Type == lexer.COMMA_DELIM {
			p.advance()
			continue
		}
		break
	}
	if !p.expectAdvance(lexer.RIGHT_BRACE) {
		return nil
	}
	return lit
}

func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	call := &ast.CallExpr{Callee: callee}
	if p.NextToken.Type == lexer.RIGHT_PAREN {
		p.advance()
		return call
	}
	p.advance()
	call.Args = append(call.Args, p.parseExpr(LOWEST))
	for p.NextToken.Type == lexer.COMMA_DELIM {
		p.advance()
		p.advance()
		call.Args = append(call.Args, p.parseExpr(LOWEST))
	}
	if !p.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return call
}

func (p *Parser) parseIndexExpr(left ast.Expr) ast.Expr {
	p.advance()
	index := p.parseExpr(LOWEST)
	if index == nil {
		return nil
	}
	if !p.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}
	return &ast.IndexExpr{Left: left, Index: index}
}

func (p *Parser) parseFieldAccess(left ast.Expr) ast.Expr {
	if !p.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	return &ast.FieldAccess{Object: left, Field: p.CurrToken.Literal}
}
