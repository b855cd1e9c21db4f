/*
File    : l/parser/parser_stmt.go
Author  : adapted from go-mix by Akash Maji
*/
package parser

import (
	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/lexer"
)

// parseStatement dispatches on the leading token to the matching
// declaration form, then falls back to the two-token assignment
// lookahead (`Ident =`) or the speculative `Ident . Ident =`
// field-assignment lookahead, and finally to a plain expression
// statement.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.CurrToken.Type {
	case lexer.SEMICOLON_DELIM:
		return nil
	case lexer.LET_KEY:
		return p.parseLetStmt()
	case lexer.STRUCT_KEY:
		return p.parseStructDef()
	case lexer.ENUM_KEY:
		return p.parseEnumDef()
	case lexer.TRAIT_KEY:
		return p.parseTraitDef()
	case lexer.IMPL_KEY:
		return p.parseImplBlock()
	case lexer.RETURN_KEY:
		return p.parseReturnStmt()
	case lexer.BREAK_KEY:
		return &ast.BreakStmt{}
	case lexer.CONTINUE_K:
		return &ast.ContinueStmt{}
	case lexer.IDENTIFIER_ID:
		if p.NextToken.Type == lexer.ASSIGN_OP {
			return p.parseAssignStmt()
		}
		if p.NextToken.Type == lexer.DOT_OP {
			return p.parseIdentDotStatement()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr(LOWEST)
	if expr == nil {
		return nil
	}
	return &ast.ExprStmt{Expr: expr}
}

func (p *Parser) parseAssignStmt() ast.Stmt {
	name := p.CurrToken.Literal
	p.advance() // Curr = '='
	p.advance() // Curr = value start
	val := p.parseExpr(LOWEST)
	if val == nil {
		return nil
	}
	return &ast.AssignStmt{Name: name, Value: val}
}

// parseIdentDotStatement handles the `Ident . Ident` prefix. Only the
// two-segment form followed immediately by `=` is a field assignment
// (per §9, deeper chains are out of grammar at statement head); any
// other continuation is a general expression — including a further
// postfix chain, e.g. `a.b.c()` — and is handed to continueExpr instead
// of being re-parsed from the top.
func (p *Parser) parseIdentDotStatement() ast.Stmt {
	objName := p.CurrToken.Literal
	p.advance() // Curr = '.'
	if !p.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	field := p.CurrToken.Literal

	if p.NextToken.Type == lexer.ASSIGN_OP {
		p.advance() // Curr = '='
		p.advance() // Curr = value start
		val := p.parseExpr(LOWEST)
		if val == nil {
			return nil
		}
		return &ast.FieldAssignStmt{Object: objName, Field: field, Value: val}
	}

	left := ast.Expr(&ast.FieldAccess{Object: &ast.Identifier{Name: objName}, Field: field})
	expr := p.continueExpr(left, LOWEST)
	if expr == nil {
		return nil
	}
	return &ast.ExprStmt{Expr: expr}
}

func (p *Parser) parseLetStmt() ast.Stmt {
	if !p.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	name := p.CurrToken.Literal

	var typ *ast.TypeExpr
	if p.NextToken.Type == lexer.COLON_DELIM {
		p.advance() // Curr = ':'
		p.advance() // Curr = type token
		typ = p.parseTypeExpr()
		if typ == nil {
			return nil
		}
	}

	if !p.expectAdvance(lexer.ASSIGN_OP) {
		return nil
	}
	p.advance() // Curr = init expr start
	init := p.parseExpr(LOWEST)
	if init == nil {
		return nil
	}
	return &ast.LetStmt{Name: name, Type: typ, Init: init}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	if p.NextToken.Type == lexer.RIGHT_BRACE || p.NextToken.Type == lexer.EOF_TYPE {
		return &ast.ReturnStmt{}
	}
	p.advance()
	val := p.parseExpr(LOWEST)
	if val == nil {
		return nil
	}
	return &ast.ReturnStmt{Value: val}
}

func (p *Parser) parseStructDef() ast.Stmt {
	if !p.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	def := &ast.StructDef{Name: p.CurrToken.Literal}
	if !p.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	p.advance() // into body

	for p.CurrToken.Type == lexer.IDENTIFIER_ID {
		fname := p.CurrToken.Literal
		if !p.expectAdvance(lexer.COLON_DELIM) {
			return nil
		}
		p.advance() // Curr = type token
		ftype := p.parseTypeExpr()
		if ftype == nil {
			return nil
		}
		def.Fields = append(def.Fields, ast.FieldDecl{Name: fname, Type: *ftype})
		if p.NextToken.Type == lexer.COMMA_DELIM {
			p.advance()
		}
		p.advance()
	}

	for p.CurrToken.Type == lexer.FN_KEY {
		fnExpr := p.parseFunctionLiteral()
		if fn, ok := fnExpr.(*ast.FunctionLiteral); ok {
			def.Methods = append(def.Methods, fn)
		}
		p.advance()
	}

	if p.CurrToken.Type != lexer.RIGHT_BRACE {
		p.addError("expected '}' to close struct %s, got %s", def.Name, p.CurrToken.Type)
		return nil
	}
	return def
}

func (p *Parser) parseEnumDef() ast.Stmt {
	if !p.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	def := &ast.EnumDef{Name: p.CurrToken.Literal}
	if !p.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	p.advance()

	for p.CurrToken.Type == lexer.IDENTIFIER_ID {
		variant := ast.EnumVariantDecl{Name: p.CurrToken.Literal}
		if p.NextToken.Type == lexer.LEFT_PAREN {
			p.advance() // Curr = '('
			p.advance() // Curr = payload type token
			pt := p.parseTypeExpr()
			if pt == nil {
				return nil
			}
			variant.Payload = pt
			if !p.expectAdvance(lexer.RIGHT_PAREN) {
				return nil
			}
		}
		def.Variants = append(def.Variants, variant)
		if p.NextToken.Type == lexer.COMMA_DELIM {
			p.advance()
		}
		p.advance()
	}

	if p.CurrToken.Type != lexer.RIGHT_BRACE {
		p.addError("expected '}' to close enum %s, got %s", def.Name, p.CurrToken.Type)
		return nil
	}
	return def
}

func (p *Parser) parseTraitDef() ast.Stmt {
	if !p.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	def := &ast.TraitDef{Name: p.CurrToken.Literal}
	if !p.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	p.advance()

	for p.CurrToken.Type == lexer.FN_KEY {
		sig := p.parseTraitMethodSig()
		if sig == nil {
			return nil
		}
		def.Methods = append(def.Methods, *sig)
		p.advance()
	}

	if p.CurrToken.Type != lexer.RIGHT_BRACE {
		p.addError("expected '}' to close trait %s, got %s", def.Name, p.CurrToken.Type)
		return nil
	}
	return def
}

func (p *Parser) parseTraitMethodSig() *ast.TraitMethodSig {
	if !p.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	sig := &ast.TraitMethodSig{Name: p.CurrToken.Literal}
	if !p.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	if p.NextToken.Type != lexer.RIGHT_PAREN {
		p.advance()
		param := p.parseParam()
		sig.Params = append(sig.Params, param)
		for p.NextToken.Type == lexer.COMMA_DELIM {
			p.advance()
			p.advance()
			sig.Params = append(sig.Params, p.parseParam())
		}
	}
	if !p.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if p.NextToken.Type == lexer.ARROW_OP {
		p.advance()
		p.advance()
		sig.ReturnType = p.parseTypeExpr()
	}
	return sig
}

func (p *Parser) parseImplBlock() ast.Stmt {
	p.advance() // Curr = first identifier after 'impl'
	if p.CurrToken.Type != lexer.IDENTIFIER_ID {
		p.addError("expected identifier after 'impl', got %s", p.CurrToken.Type)
		return nil
	}
	name1 := p.CurrToken.Literal
	impl := &ast.ImplBlock{}

	if p.NextToken.Type == lexer.FOR_KEY {
		trait := name1
		impl.Trait = &trait
		p.advance() // Curr = 'for'
		if !p.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		impl.Type = p.CurrToken.Literal
	} else {
		impl.Type = name1
	}

	if !p.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	p.advance()

	for p.CurrToken.Type == lexer.FN_KEY {
		fnExpr := p.parseFunctionLiteral()
		if fn, ok := fnExpr.(*ast.FunctionLiteral); ok {
			impl.Methods = append(impl.Methods, fn)
		}
		p.advance()
	}

	if p.CurrToken.Type != lexer.RIGHT_BRACE {
		p.addError("expected '}' to close impl block for %s, got %s", impl.Type, p.CurrToken.Type)
		return nil
	}
	return impl
}
