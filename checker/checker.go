/*
File    : l/checker/checker.go
Author  : adapted from go-mix by Akash Maji
*/

// Package checker implements a single-pass, advisory type checker: it
// walks top-level declarations in source order, maintaining a flat
// variable-type map and a struct-definition map, and reports every
// contract violation it finds without aborting the walk. Whether those
// reports are fatal or downgraded to a warning and discarded is the CLI
// driver's decision, not this package's -- Check always returns every
// error it found and lets the caller choose.
package checker

import (
	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/lerr"
)

// Checker carries the state a single checking pass accumulates: a flat
// top-level variable-type map and the struct-name->definition map it
// consults for field access/struct-literal checks.
type Checker struct {
	vars    map[string]*ast.TypeExpr
	structs map[string]*ast.StructDef
	errors  []*lerr.Error
}

// New creates an empty Checker.
func New() *Checker {
	return &Checker{
		vars:    make(map[string]*ast.TypeExpr),
		structs: make(map[string]*ast.StructDef),
	}
}

// Check runs the single pass over prog's top-level statements and returns
// every Type-kind error found, in source order. An empty slice means the
// program checked clean.
func Check(prog *ast.Program) []*lerr.Error {
	c := New()
	for _, stmt := range prog.Statements {
		c.checkStmt(stmt)
	}
	return c.errors
}

func (c *Checker) fail(format string, a ...interface{}) {
	c.errors = append(c.errors, lerr.New(lerr.Type, format, a...))
}

func infer(kind ast.TKind) *ast.TypeExpr { return &ast.TypeExpr{Kind: kind} }

// compatible implements the checker's unification rule: Infer unifies
// with anything, named types compare by name, arrays compare element
// type recursively, everything else compares by Kind.
func compatible(a, b *ast.TypeExpr) bool {
	if a == nil || b == nil {
		return true
	}
	if a.Kind == ast.TInfer || b.Kind == ast.TInfer {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ast.TNamed:
		return a.Name == b.Name
	case ast.TArray:
		return compatible(a.ElemType, b.ElemType)
	default:
		return true
	}
}

func (c *Checker) checkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		c.checkLet(s)
	case *ast.AssignStmt:
		c.checkAssign(s)
	case *ast.FieldAssignStmt:
		c.checkFieldAssign(s)
	case *ast.StructDef:
		c.structs[s.Name] = s
	case *ast.EnumDef, *ast.TraitDef, *ast.ImplBlock:
		// Not checked: nothing is recorded for these definitions, and the
		// method bodies of impl blocks are not inspected.
	case *ast.ExprStmt:
		c.inferExpr(s.Expr)
	case *ast.ReturnStmt:
		if s.Value != nil {
			c.inferExpr(s.Value)
		}
	case *ast.BreakStmt, *ast.ContinueStmt:
	}
}

func (c *Checker) checkLet(s *ast.LetStmt) {
	initType := c.inferExpr(s.Init)
	if s.Type != nil {
		if !compatible(initType, s.Type) {
			c.fail("let %s: declared type %s is not compatible with initializer type %s", s.Name, s.Type, initType)
		}
		c.vars[s.Name] = s.Type
		return
	}
	c.vars[s.Name] = initType
}

func (c *Checker) checkAssign(s *ast.AssignStmt) {
	valType := c.inferExpr(s.Value)
	declared, ok := c.vars[s.Name]
	if !ok {
		c.fail("assignment to undeclared variable %s", s.Name)
		return
	}
	if !compatible(declared, valType) {
		c.fail("cannot assign %s to variable %s of type %s", valType, s.Name, declared)
	}
}

func (c *Checker) checkFieldAssign(s *ast.FieldAssignStmt) {
	objType, ok := c.vars[s.Object]
	if !ok {
		c.fail("assignment to field of undeclared variable %s", s.Object)
		return
	}
	if objType.Kind != ast.TNamed {
		c.fail("%s.%s: %s is not a struct", s.Object, s.Field, objType)
		return
	}
	def, ok := c.structs[objType.Name]
	if !ok {
		// Struct defined after use, or an enum name: gradual, not an error.
		c.inferExpr(s.Value)
		return
	}
	valType := c.inferExpr(s.Value)
	for _, f := range def.Fields {
		if f.Name == s.Field {
			if !compatible(&f.Type, valType) {
				c.fail("%s.%s: field type %s is not compatible with value type %s", s.Object, s.Field, &f.Type, valType)
			}
			return
		}
	}
	c.fail("struct %s has no field %s", def.Name, s.Field)
}

// inferExpr computes e's type, recording a Type error and returning
// Infer whenever a contract is violated so inference can keep proceeding
// through the rest of the expression tree.
func (c *Checker) inferExpr(e ast.Expr) *ast.TypeExpr {
	switch ex := e.(type) {
	case *ast.IntLiteral:
		return infer(ast.TInt)
	case *ast.FloatLiteral:
		return infer(ast.TFloat)
	case *ast.StringLiteral:
		return infer(ast.TString)
	case *ast.BoolLiteral:
		return infer(ast.TBool)
	case *ast.NoneLiteral:
		return infer(ast.TNone)
	case *ast.ArrayLiteral:
		return c.inferArrayLiteral(ex)
	case *ast.Identifier:
		if t, ok := c.vars[ex.Name]; ok {
			return t
		}
		return infer(ast.TInfer)
	case *ast.StructLiteral:
		for _, f := range ex.Fields {
			c.inferExpr(f.Value)
		}
		return &ast.TypeExpr{Kind: ast.TNamed, Name: ex.Name}
	case *ast.FieldAccess:
		return c.inferFieldAccess(ex)
	case *ast.EnumVariantExpr:
		if ex.Data != nil {
			c.inferExpr(ex.Data)
		}
		return &ast.TypeExpr{Kind: ast.TNamed, Name: ex.Enum}
	case *ast.BinaryExpr:
		return c.inferBinary(ex)
	case *ast.UnaryExpr:
		return c.inferUnary(ex)
	case *ast.IndexExpr:
		return c.inferIndex(ex)
	case *ast.CallExpr:
		c.inferExpr(ex.Callee)
		for _, a := range ex.Args {
			c.inferExpr(a)
		}
		return infer(ast.TInfer)
	case *ast.BlockExpr:
		return c.inferBlock(ex)
	case *ast.IfExpr:
		c.inferExpr(ex.Condition)
		c.inferBlock(ex.Then)
		if ex.Else != nil {
			c.inferExpr(ex.Else)
		}
		return infer(ast.TInfer)
	case *ast.WhileExpr:
		c.inferExpr(ex.Condition)
		c.inferBlock(ex.Body)
		return infer(ast.TNone)
	case *ast.ForExpr:
		c.inferExpr(ex.Iterable)
		c.inferBlock(ex.Body)
		return infer(ast.TNone)
	case *ast.MatchExpr:
		c.inferExpr(ex.Scrutinee)
		for _, arm := range ex.Arms {
			c.inferExpr(arm.Body)
		}
		return infer(ast.TInfer)
	case *ast.FunctionLiteral:
		return c.inferFunctionLiteral(ex)
	default:
		return infer(ast.TInfer)
	}
}

func (c *Checker) inferArrayLiteral(ex *ast.ArrayLiteral) *ast.TypeExpr {
	if len(ex.Elements) == 0 {
		return &ast.TypeExpr{Kind: ast.TArray, ElemType: infer(ast.TInfer)}
	}
	elem := c.inferExpr(ex.Elements[0])
	for _, e := range ex.Elements[1:] {
		c.inferExpr(e)
	}
	return &ast.TypeExpr{Kind: ast.TArray, ElemType: elem}
}

func (c *Checker) inferFieldAccess(ex *ast.FieldAccess) *ast.TypeExpr {
	objType := c.inferExpr(ex.Object)
	if objType.Kind != ast.TNamed {
		return infer(ast.TInfer)
	}
	def, ok := c.structs[objType.Name]
	if !ok {
		return infer(ast.TInfer)
	}
	for _, f := range def.Fields {
		if f.Name == ex.Field {
			return &f.Type
		}
	}
	// Unknown field: gradual, yields Infer rather than an error.
	return infer(ast.TInfer)
}

func (c *Checker) inferBinary(ex *ast.BinaryExpr) *ast.TypeExpr {
	left := c.inferExpr(ex.Left)
	right := c.inferExpr(ex.Right)
	switch ex.Op {
	case "+", "-", "*", "/":
		if left.Kind == ast.TString || right.Kind == ast.TString {
			if ex.Op != "+" {
				c.fail("operator %s does not support string operands", ex.Op)
			}
			return infer(ast.TString)
		}
		if left.Kind == ast.TFloat || right.Kind == ast.TFloat {
			return infer(ast.TFloat)
		}
		if !numeric(left) || !numeric(right) {
			c.fail("operator %s requires numeric operands, got %s and %s", ex.Op, left, right)
		}
		return infer(ast.TInt)
	case "%":
		if left.Kind != ast.TInt || right.Kind != ast.TInt {
			c.fail("operator %% requires two ints, got %s and %s", left, right)
		}
		return infer(ast.TInt)
	case "==", "!=", "<", "<=", ">", ">=":
		return infer(ast.TBool)
	case "&&", "||":
		if left.Kind != ast.TBool || right.Kind != ast.TBool {
			c.fail("operator %s requires two bools, got %s and %s", ex.Op, left, right)
		}
		return infer(ast.TBool)
	default:
		return infer(ast.TInfer)
	}
}

func numeric(t *ast.TypeExpr) bool {
	return t.Kind == ast.TInt || t.Kind == ast.TFloat || t.Kind == ast.TInfer
}

func (c *Checker) inferUnary(ex *ast.UnaryExpr) *ast.TypeExpr {
	right := c.inferExpr(ex.Right)
	switch ex.Op {
	case "!":
		if right.Kind != ast.TBool && right.Kind != ast.TInfer {
			c.fail("operator ! requires a bool operand, got %s", right)
		}
		return infer(ast.TBool)
	case "-":
		if !numeric(right) {
			c.fail("unary - requires a numeric operand, got %s", right)
		}
		return right
	default:
		return infer(ast.TInfer)
	}
}

func (c *Checker) inferIndex(ex *ast.IndexExpr) *ast.TypeExpr {
	left := c.inferExpr(ex.Left)
	idx := c.inferExpr(ex.Index)
	if idx.Kind != ast.TInt && idx.Kind != ast.TInfer {
		c.fail("index must be int, got %s", idx)
	}
	switch left.Kind {
	case ast.TArray:
		return left.ElemType
	case ast.TString:
		return infer(ast.TString)
	default:
		return infer(ast.TInfer)
	}
}

func (c *Checker) inferBlock(b *ast.BlockExpr) *ast.TypeExpr {
	var last *ast.TypeExpr = infer(ast.TNone)
	for _, stmt := range b.Statements {
		c.checkStmt(stmt)
		if es, ok := stmt.(*ast.ExprStmt); ok {
			last = c.inferExpr(es.Expr)
		}
	}
	return last
}

func (c *Checker) inferFunctionLiteral(fn *ast.FunctionLiteral) *ast.TypeExpr {
	paramTypes := make([]*ast.TypeExpr, len(fn.Params))
	saved := make(map[string]*ast.TypeExpr, len(fn.Params))
	for i, p := range fn.Params {
		if p.Type != nil {
			paramTypes[i] = p.Type
		} else {
			paramTypes[i] = infer(ast.TInfer)
		}
		if old, ok := c.vars[p.Name]; ok {
			saved[p.Name] = old
		}
		c.vars[p.Name] = paramTypes[i]
	}
	c.inferBlock(fn.Body)
	for i, p := range fn.Params {
		if old, ok := saved[p.Name]; ok {
			c.vars[p.Name] = old
		} else {
			delete(c.vars, p.Name)
		}
		_ = i
	}
	ret := fn.ReturnType
	if ret == nil {
		ret = infer(ast.TInfer)
	}
	if fn.Name != "" {
		c.vars[fn.Name] = &ast.TypeExpr{Kind: ast.TFunction, ParamTypes: paramTypes, ReturnType: ret}
	}
	return infer(ast.TFunction)
}
