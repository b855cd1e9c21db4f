/*
File    : l/backend/backend_test.go
Author  : adapted from go-mix by Akash Maji
*/

package backend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/ir"
	"github.com/l-lang/l/parser"
)

func lowerSrc(t *testing.T, src string) *ir.Program {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "%v", p.Errors)
	out, err := ir.Lower(prog)
	require.NoError(t, err)
	return out
}

func TestNativeCGeneratesFunction(t *testing.T) {
	prog := lowerSrc(t, `fn add(a: int, b: int) -> int { a + b }`)
	out, err := New(NativeC).Generate(prog)
	require.NoError(t, err)
	require.Contains(t, string(out), "int64_t add(int64_t a, int64_t b)")
	require.Contains(t, string(out), "(a + b)")
}

func TestStubBackendsReportNotImplemented(t *testing.T) {
	prog := lowerSrc(t, `fn noop() -> int { 0 }`)
	for _, kind := range []Kind{Interpreter, LLVM, Cranelift, JIT, GPU} {
		_, err := New(kind).Generate(prog)
		require.Error(t, err)
	}
}
