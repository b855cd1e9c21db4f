/*
File    : l/checker/checker_test.go
Author  : adapted from go-mix by Akash Maji
*/

package checker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/checker"
	"github.com/l-lang/l/parser"
)

func TestCheckCleanProgram(t *testing.T) {
	p := parser.NewParser(`let x: int = 2 + 3  fn main() { print(x) }`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	require.Empty(t, checker.Check(prog))
}

func TestCheckLetDeclaredTypeMismatch(t *testing.T) {
	p := parser.NewParser(`let x: string = 2 + 3`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	errs := checker.Check(prog)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Error(), "not compatible")
}

func TestCheckAssignToUndeclaredVariable(t *testing.T) {
	p := parser.NewParser(`fn main() { y = 5 }`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	errs := checker.Check(prog)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Error(), "undeclared variable")
}

func TestCheckAssignTypeMismatch(t *testing.T) {
	p := parser.NewParser(`fn main() { let x: int = 1  x = "oops" }`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	errs := checker.Check(prog)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Error(), "cannot assign")
}

func TestCheckBooleanOperatorRequiresBoolOperands(t *testing.T) {
	p := parser.NewParser(`fn main() { let x = 1 && 2 }`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	errs := checker.Check(prog)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Error(), "requires two bools")
}

func TestCheckStructFieldAssignUnknownField(t *testing.T) {
	p := parser.NewParser(`struct P { x: int, y: int }  fn main() { let p = P { x: 1, y: 2 }  p.z = 3 }`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	errs := checker.Check(prog)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Error(), "has no field")
}

func TestCheckStructFieldAssignTypeMismatch(t *testing.T) {
	p := parser.NewParser(`struct P { x: int }  fn main() { let p = P { x: 1 }  p.x = "nope" }`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	errs := checker.Check(prog)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Error(), "field type")
}

func TestCheckInferredLetHasNoDeclaredType(t *testing.T) {
	p := parser.NewParser(`fn main() { let x = 1  let y: int = x }`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	require.Empty(t, checker.Check(prog))
}

func TestCheckIndexRequiresIntIndex(t *testing.T) {
	p := parser.NewParser(`fn main() { let a = [1, 2, 3]  let b = a["x"] }`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	errs := checker.Check(prog)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Error(), "index must be int")
}
