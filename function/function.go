/*
File    : l/function/function.go
Author  : adapted from go-mix by Akash Maji
*/

// Package function implements L's function/closure runtime value: name,
// params, body, the captured defining environment, and an optional
// bound self.
package function

import (
	"strings"

	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/objects"
	"github.com/l-lang/l/scope"
)

// Function is a first-class function value. Env is the live *scope.Scope
// the function closed over at definition time — not a snapshot copy, so
// mutations made through the closure after capture are visible to it, the
// same behavior the teacher's evaluator relied on by storing a live Scp
// reference rather than calling Scope.Copy().
type Function struct {
	Name   string
	Params []ast.Param
	Body   *ast.BlockExpr
	Env    *scope.Scope
	Self   objects.Value // non-nil when bound as a method receiver
}

func (*Function) Type() objects.Type { return objects.FunctionType }

func (f *Function) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return "fn " + f.Name + "(" + strings.Join(names, ", ") + ")"
}

// Bind returns a copy of f with Self attached, so that calling it binds
// self in the body's frame. Struct method calls in package eval do not
// go through Bind: they run the method literal directly and bind self
// there.
func (f *Function) Bind(self objects.Value) *Function {
	return &Function{Name: f.Name, Params: f.Params, Body: f.Body, Env: f.Env, Self: self}
}
