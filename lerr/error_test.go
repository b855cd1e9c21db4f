/*
File    : l/lerr/error_test.go
Author  : adapted from go-mix by Akash Maji
*/

package lerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/lerr"
)

func TestErrorStringWithoutPosition(t *testing.T) {
	e := lerr.New(lerr.Runtime, "division by zero")
	require.Equal(t, "Runtime Error: division by zero", e.Error())
}

func TestErrorStringWithLineOnly(t *testing.T) {
	e := lerr.NewAt(lerr.Parse, 7, 0, "expected %s, got %s", "}", "EOF")
	require.Equal(t, "Parse Error at line 7: expected }, got EOF", e.Error())
}

func TestErrorStringWithLineAndColumn(t *testing.T) {
	e := lerr.NewAt(lerr.Lex, 3, 12, "unexpected character %q", '@')
	require.Equal(t, "Lex Error at line 3:12: unexpected character '@'", e.Error())
}

func TestIsMatchesByKindOnly(t *testing.T) {
	a := lerr.NewAt(lerr.Type, 1, 1, "mismatch one")
	b := lerr.New(lerr.Type, "mismatch two")
	require.True(t, errors.Is(a, b))

	c := lerr.New(lerr.IO, "mismatch two")
	require.False(t, errors.Is(a, c))
}
