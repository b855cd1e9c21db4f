/*
File: l/lexer/lexer_utils.go
Author: adapted from go-mix by Akash Maji
*/
package lexer

import (
	"strings"
	"unicode"
)

func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

func isAlphanumeric(curr byte) bool {
	return unicode.IsLetter(rune(curr)) || unicode.IsDigit(rune(curr))
}

func isNumeric(curr byte) bool {
	return unicode.IsDigit(rune(curr))
}

func isAlpha(curr byte) bool {
	return unicode.IsLetter(rune(curr))
}

// isSpecial reports whether c is neither alphanumeric, whitespace, nor a
// recognized operator/punctuation character.
func isSpecial(c byte) bool {
	return !isAlphanumeric(c) && !isWhitespace(c) && !strings.ContainsRune("=+-*/%!<>.,;:(){}[]\"&|", rune(c))
}

// readStringLiteral reads a double-quoted string literal, honoring only
// four escapes (\n \t \\ \"); any other escape is a lex error. A string
// containing an unescaped '{' is tagged Interpolated, though no later
// stage expands it.
func readStringLiteral(lex *Lexer) Token {
	startLine, startCol := lex.Line, lex.Column
	lex.Advance() // consume opening quote

	var builder strings.Builder
	interpolated := false

	for lex.Current != '"' {
		if lex.Current == 0 {
			lex.addError("unterminated string literal", startLine, startCol)
			return NewTokenWithMetadata(INVALID_TYPE, builder.String(), startLine, startCol)
		}
		if lex.Current == '\\' {
			lex.Advance()
			escaped, ok := escapeChar(lex.Current)
			if !ok {
				lex.addError("invalid escape sequence: \\"+string(lex.Current), lex.Line, lex.Column)
				return NewTokenWithMetadata(INVALID_TYPE, builder.String(), startLine, startCol)
			}
			builder.WriteByte(escaped)
			lex.Advance()
			continue
		}
		if lex.Current == '{' {
			interpolated = true
		}
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.Advance() // consume closing quote

	tok := NewTokenWithMetadata(STRING_LIT, builder.String(), startLine, startCol)
	tok.Interpolated = interpolated
	return tok
}

// escapeChar converts the character following a backslash into its literal
// byte value. Only four escapes are valid.
func escapeChar(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	default:
		return 0, false
	}
}

// readNumber reads an integer or, if followed by a single '.' and more
// digits, a float literal. No exponents, no hex/octal/binary.
func readNumber(lex *Lexer) Token {
	startLine, startCol := lex.Line, lex.Column
	start := lex.Position
	src := lex.Src
	n := lex.SrcLength

	i := start
	for i < n && isDigitASCII(src[i]) {
		i++
	}

	isFloat := false
	if i < n && src[i] == '.' && i+1 < n && isDigitASCII(src[i+1]) {
		isFloat = true
		i++
		for i < n && isDigitASCII(src[i]) {
			i++
		}
	}

	lex.Column += i - start
	lex.Position = i
	if i >= n {
		lex.Current = 0
		lex.Position = n
	} else {
		lex.Current = src[i]
	}

	tokType := INT_LIT
	if isFloat {
		tokType = FLOAT_LIT
	}
	return NewTokenWithMetadata(tokType, src[start:i], startLine, startCol)
}

// readIdentifier reads an identifier and reclassifies it as a keyword token
// when it matches the closed keyword table.
func readIdentifier(lex *Lexer) Token {
	startLine, startCol := lex.Line, lex.Column
	position := lex.Position

	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[position:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, startLine, startCol)
}
