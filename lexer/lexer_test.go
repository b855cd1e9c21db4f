/*
File    : l/lexer/lexer_test.go
Author  : adapted from go-mix by Akash Maji
*/

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/lexer"
)

func tokenTypes(t *testing.T, src string) []lexer.TokenType {
	t.Helper()
	lex := lexer.NewLexer(src)
	toks := lex.ConsumeTokens()
	require.False(t, lex.HasErrors(), "%v", lex.Errors)
	types := make([]lexer.TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestLexOperatorsAndPunctuation(t *testing.T) {
	types := tokenTypes(t, `+ - * / % = == != < <= > >= && || ! . -> => :: ( ) { } [ ] , ; :`)
	require.Equal(t, []lexer.TokenType{
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP,
		lexer.ASSIGN_OP, lexer.EQ_OP, lexer.NE_OP, lexer.LT_OP, lexer.LE_OP,
		lexer.GT_OP, lexer.GE_OP, lexer.AND_OP, lexer.OR_OP, lexer.NOT_OP, lexer.DOT_OP,
		lexer.ARROW_OP, lexer.FAT_ARROW_OP, lexer.COLON_COLON_OP,
		lexer.LEFT_PAREN, lexer.RIGHT_PAREN, lexer.LEFT_BRACE, lexer.RIGHT_BRACE,
		lexer.LEFT_BRACKET, lexer.RIGHT_BRACKET, lexer.COMMA_DELIM,
		lexer.SEMICOLON_DELIM, lexer.COLON_DELIM,
	}, types)
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	types := tokenTypes(t, `fn let struct enum trait impl for if else while in return match break continue none true false foo`)
	require.Equal(t, []lexer.TokenType{
		lexer.FN_KEY, lexer.LET_KEY, lexer.STRUCT_KEY, lexer.ENUM_KEY, lexer.TRAIT_KEY,
		lexer.IMPL_KEY, lexer.FOR_KEY, lexer.IF_KEY, lexer.ELSE_KEY, lexer.WHILE_KEY,
		lexer.IN_KEY, lexer.RETURN_KEY, lexer.MATCH_KEY, lexer.BREAK_KEY, lexer.CONTINUE_K,
		lexer.NONE_KEY, lexer.TRUE_KEY, lexer.FALSE_KEY, lexer.IDENTIFIER_ID,
	}, types)
}

func TestLexIntAndFloatLiterals(t *testing.T) {
	lex := lexer.NewLexer(`42 3.14`)
	toks := lex.ConsumeTokens()
	require.False(t, lex.HasErrors())
	require.Len(t, toks, 2)
	require.Equal(t, lexer.INT_LIT, toks[0].Type)
	require.Equal(t, "42", toks[0].Literal)
	require.Equal(t, lexer.FLOAT_LIT, toks[1].Type)
	require.Equal(t, "3.14", toks[1].Literal)
}

func TestLexStringLiteralWithEscapes(t *testing.T) {
	lex := lexer.NewLexer(`"a\nb\t\"c\\"`)
	toks := lex.ConsumeTokens()
	require.False(t, lex.HasErrors())
	require.Len(t, toks, 1)
	require.Equal(t, lexer.STRING_LIT, toks[0].Type)
	require.Equal(t, "a\nb\t\"c\\", toks[0].Literal)
}

func TestLexStringUnterminatedIsError(t *testing.T) {
	lex := lexer.NewLexer(`"abc`)
	lex.ConsumeTokens()
	require.True(t, lex.HasErrors())
}

func TestLexStringInvalidEscapeIsError(t *testing.T) {
	lex := lexer.NewLexer(`"a\zb"`)
	lex.ConsumeTokens()
	require.True(t, lex.HasErrors())
}

func TestLexStringInterpolationFlag(t *testing.T) {
	lex := lexer.NewLexer(`"hello {name}"`)
	toks := lex.ConsumeTokens()
	require.False(t, lex.HasErrors())
	require.Len(t, toks, 1)
	require.True(t, toks[0].Interpolated)
}

func TestLexLineComment(t *testing.T) {
	lex := lexer.NewLexer("let x = 1 // trailing comment\nlet y = 2")
	toks := lex.ConsumeTokens()
	require.False(t, lex.HasErrors())
	require.Len(t, toks, 8)
}

func TestLexBareAmpersandIsError(t *testing.T) {
	lex := lexer.NewLexer(`&`)
	lex.ConsumeTokens()
	require.True(t, lex.HasErrors())
}

func TestLexBarePipeIsError(t *testing.T) {
	lex := lexer.NewLexer(`|`)
	lex.ConsumeTokens()
	require.True(t, lex.HasErrors())
}

func TestLexUnexpectedCharacterIsError(t *testing.T) {
	lex := lexer.NewLexer(`@`)
	lex.ConsumeTokens()
	require.True(t, lex.HasErrors())
}
