/*
File    : l/function/function_test.go
Author  : adapted from go-mix by Akash Maji
*/

package function_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/function"
	"github.com/l-lang/l/objects"
	"github.com/l-lang/l/scope"
)

func TestFunctionTypeAndString(t *testing.T) {
	fn := &function.Function{
		Name:   "add",
		Params: []ast.Param{{Name: "a"}, {Name: "b"}},
		Body:   &ast.BlockExpr{},
		Env:    scope.NewScope(nil),
	}
	require.Equal(t, objects.FunctionType, fn.Type())
	require.Equal(t, "fn add(a, b)", fn.String())
}

func TestBindAttachesSelfWithoutMutatingOriginal(t *testing.T) {
	env := scope.NewScope(nil)
	fn := &function.Function{Name: "sum", Params: []ast.Param{{Name: "self"}}, Body: &ast.BlockExpr{}, Env: env}

	self := &objects.Struct{Name: "P", Fields: map[string]objects.Value{"x": &objects.Integer{Value: 1}}}
	bound := fn.Bind(self)

	require.Nil(t, fn.Self)
	require.Same(t, self, bound.Self)
	require.Equal(t, fn.Name, bound.Name)
	require.Same(t, env, bound.Env)
}
