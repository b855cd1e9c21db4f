/*
File    : l/eval/scenarios_test.go
Author  : adapted from go-mix by Akash Maji
*/

package eval_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/builtins"
	"github.com/l-lang/l/eval"
	"github.com/l-lang/l/parser"
)

func runProgram(t *testing.T, src string) string {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "%v", p.Errors)

	var buf bytes.Buffer
	builtins.SetOutput(&buf)
	defer builtins.SetOutput(os.Stdout)

	_, err := eval.New().Run(prog)
	require.NoError(t, err)
	return buf.String()
}

func TestScenarioConstantArithmetic(t *testing.T) {
	out := runProgram(t, `let x = 2 + 3 * 4  fn main() { print(x) }`)
	require.Equal(t, "14\n", out)
}

func TestScenarioRecursiveFibonacci(t *testing.T) {
	out := runProgram(t, `fn fib(n) { if n < 2 { return n } return fib(n-1) + fib(n-2) }  fn main() { print(fib(10)) }`)
	require.Equal(t, "55\n", out)
}

func TestScenarioForRangeSum(t *testing.T) {
	out := runProgram(t, `fn main() { let s = 0  for i in range(1, 11) { s = s + i }  print(s) }`)
	require.Equal(t, "55\n", out)
}

func TestScenarioStructMethod(t *testing.T) {
	out := runProgram(t, `struct P { x: int, y: int  fn sum(self) -> int { return self.x + self.y } }  fn main() { let p = P { x: 3, y: 4 }  print(p.sum()) }`)
	require.Equal(t, "7\n", out)
}

func TestScenarioEnumMatch(t *testing.T) {
	out := runProgram(t, `enum Opt { Some(int), None }  fn main() { let v = Opt::Some(5)  match v { Opt::Some(n) => print(n), Opt::None => print(0) } }`)
	require.Equal(t, "5\n", out)
}

func TestScenarioWhileBreak(t *testing.T) {
	out := runProgram(t, `fn main() { let i = 0  while i < 5 { if i == 3 { break }  print(i)  i = i + 1 } }`)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestScenarioStructParameterMutationDoesNotEscapeCall(t *testing.T) {
	out := runProgram(t, `struct P { x: int }  fn bump(p) { p.x = p.x + 1 }  fn main() { let a = P { x: 1 }  bump(a)  print(a.x) }`)
	require.Equal(t, "1\n", out)
}

func TestScenarioStructMethodSelfMutationDoesNotEscapeCall(t *testing.T) {
	out := runProgram(t, `struct P { x: int  fn bump(self) { self.x = self.x + 1 } }  fn main() { let a = P { x: 1 }  a.bump()  print(a.x) }`)
	require.Equal(t, "1\n", out)
}

func TestScenarioSameScopeFieldAssignStillMutates(t *testing.T) {
	out := runProgram(t, `struct P { x: int }  fn main() { let a = P { x: 1 }  a.x = 5  print(a.x) }`)
	require.Equal(t, "5\n", out)
}
