/*
File    : l/eval/evaluator.go
Author  : adapted from go-mix by Akash Maji
*/

// Package eval tree-walks L's AST directly against a scope.Scope
// environment chain. It is split by concern the way the teacher's
// go-mix/eval package is (eval_structs.go, eval_loops.go,
// eval_controls.go, eval_assignments.go, eval_access.go), generalized
// from GoMixObject/flat-map scoping to L's closure-chain Value/Scope and
// to a four-state control-flow-signal model: Normal/Break/Continue/
// Return -- Return is required to implement `return` escaping nested
// if/block expressions correctly.
package eval

import (
	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/builtins"
	"github.com/l-lang/l/function"
	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/objects"
	"github.com/l-lang/l/scope"
)

// Signal is the control-flow tag a block/statement evaluation carries
// alongside its value.
type Signal int

const (
	Normal Signal = iota
	Break
	Continue
	Return
)

// Evaluator holds the struct/enum/trait/impl registries (written once
// during the single top-level definition pass, then read-only) and the
// global frame every top-level statement runs against.
type Evaluator struct {
	Global  *scope.Scope
	Structs map[string]*ast.StructDef
	Enums   map[string]*ast.EnumDef
	Traits  map[string]*ast.TraitDef
	// Methods maps a type name to its resolved method set: the union of
	// every struct-inherent method and every impl block registered
	// against that type, later registrations overwriting earlier ones by
	// method name. Duplicate (type, trait) registrations therefore just
	// overwrite the previous entry, without needing to track trait
	// identity at dispatch time, since dispatch never cares which trait
	// (if any) a method came from.
	Methods map[string]map[string]*ast.FunctionLiteral
}

// New creates an Evaluator with an empty global frame and empty
// registries.
func New() *Evaluator {
	return &Evaluator{
		Global:  scope.NewScope(nil),
		Structs: make(map[string]*ast.StructDef),
		Enums:   make(map[string]*ast.EnumDef),
		Traits:  make(map[string]*ast.TraitDef),
		Methods: make(map[string]map[string]*ast.FunctionLiteral),
	}
}

// Run evaluates every top-level statement of prog in order against the
// global frame, then, if the frame holds a function value named `main`,
// invokes it with no arguments in a fresh frame enclosing main's captured
// environment.
func (e *Evaluator) Run(prog *ast.Program) (objects.Value, error) {
	for _, stmt := range prog.Statements {
		_, sig, err := e.evalStmt(stmt, e.Global)
		if err != nil {
			return nil, err
		}
		if sig == Break || sig == Continue {
			return nil, lerr.New(lerr.Runtime, "break/continue outside of loop")
		}
	}

	mainVal, ok := e.Global.LookUp("main")
	if !ok {
		return nil, nil
	}
	mainFn, ok := mainVal.(*function.Function)
	if !ok {
		return nil, nil
	}
	return e.callFunction(mainFn, nil)
}

// evalExpr evaluates an expression, returning its value and any
// control-flow signal that escaped from a nested block/if/while/for/
// match/function-literal node.
func (e *Evaluator) evalExpr(expr ast.Expr, env *scope.Scope) (objects.Value, Signal, error) {
	switch ex := expr.(type) {
	case *ast.IntLiteral:
		return &objects.Integer{Value: ex.Value}, Normal, nil
	case *ast.FloatLiteral:
		return &objects.Float{Value: ex.Value}, Normal, nil
	case *ast.StringLiteral:
		return &objects.String{Value: ex.Value}, Normal, nil
	case *ast.BoolLiteral:
		return &objects.Bool{Value: ex.Value}, Normal, nil
	case *ast.NoneLiteral:
		return &objects.None{}, Normal, nil
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(ex, env)
	case *ast.Identifier:
		v, ok := env.LookUp(ex.Name)
		if !ok {
			return nil, Normal, lerr.New(lerr.Runtime, "undefined variable %s", ex.Name)
		}
		return v, Normal, nil
	case *ast.StructLiteral:
		return e.evalStructLiteral(ex, env)
	case *ast.FieldAccess:
		return e.evalFieldAccess(ex, env)
	case *ast.EnumVariantExpr:
		return e.evalEnumVariant(ex, env)
	case *ast.BinaryExpr:
		return e.evalBinary(ex, env)
	case *ast.UnaryExpr:
		return e.evalUnary(ex, env)
	case *ast.CallExpr:
		return e.evalCall(ex, env)
	case *ast.IndexExpr:
		return e.evalIndex(ex, env)
	case *ast.BlockExpr:
		return e.evalBlock(ex, scope.NewScope(env))
	case *ast.IfExpr:
		return e.evalIf(ex, env)
	case *ast.WhileExpr:
		return e.evalWhile(ex, env)
	case *ast.ForExpr:
		return e.evalFor(ex, env)
	case *ast.MatchExpr:
		return e.evalMatch(ex, env)
	case *ast.FunctionLiteral:
		return e.evalFunctionLiteral(ex, env)
	default:
		return nil, Normal, lerr.New(lerr.Runtime, "cannot evaluate expression of type %T", expr)
	}
}

func (e *Evaluator) evalArrayLiteral(ex *ast.ArrayLiteral, env *scope.Scope) (objects.Value, Signal, error) {
	elems := make([]objects.Value, len(ex.Elements))
	for i, el := range ex.Elements {
		v, sig, err := e.evalExpr(el, env)
		if err != nil || sig != Normal {
			return v, sig, err
		}
		elems[i] = v
	}
	return &objects.Array{Elements: elems}, Normal, nil
}

// evalBlock evaluates a sequence of statements against env (already the
// frame the block's statements should run in -- callers that want a new
// lexical level pass scope.NewScope(env)). Its value is that of the last
// ExprStmt, or none when the block has no trailing expression statement.
// When a statement ends the block early with a non-Normal signal, that
// statement's value (a return value, for Return) is passed up with it.
func (e *Evaluator) evalBlock(block *ast.BlockExpr, env *scope.Scope) (objects.Value, Signal, error) {
	var last objects.Value = &objects.None{}
	for _, stmt := range block.Statements {
		v, sig, err := e.evalStmt(stmt, env)
		if err != nil {
			return nil, Normal, err
		}
		if sig != Normal {
			return v, sig, nil
		}
		if _, ok := stmt.(*ast.ExprStmt); ok {
			last = v
		} else {
			last = &objects.None{}
		}
	}
	return last, Normal, nil
}

// callFunction invokes fn with positional args in a fresh frame enclosing
// fn's captured defining environment: frames form a DAG rooted at
// global, and a function's frame is nested in its closure, not in the
// caller's frame. Return signals are consumed here; Break/Continue
// escaping the whole body is a runtime error.
func (e *Evaluator) callFunction(fn *function.Function, args []objects.Value) (objects.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, lerr.New(lerr.Runtime, "function %s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	frame := scope.NewScope(fn.Env)
	if fn.Self != nil {
		frame.Bind("self", fn.Self)
	}
	for i, p := range fn.Params {
		frame.Bind(p.Name, args[i])
	}
	val, sig, err := e.evalBlock(fn.Body, frame)
	if err != nil {
		return nil, err
	}
	switch sig {
	case Return, Normal:
		return val, nil
	default:
		return nil, lerr.New(lerr.Runtime, "break/continue outside of loop")
	}
}

// callMethod is callFunction's sibling for struct methods, which are
// stored as bare *ast.FunctionLiteral in the registries rather than
// captured *function.Function closures: a method's frame encloses the
// *caller's* current frame, not a captured definition-time environment.
func (e *Evaluator) callMethod(method *ast.FunctionLiteral, self objects.Value, args []objects.Value, callerEnv *scope.Scope) (objects.Value, error) {
	params := method.Params
	if len(params) > 0 && params[0].Name == "self" {
		params = params[1:]
	}
	if len(args) != len(params) {
		return nil, lerr.New(lerr.Runtime, "method %s expects %d argument(s), got %d", method.Name, len(params), len(args))
	}
	frame := scope.NewScope(callerEnv)
	if self != nil {
		frame.Bind("self", self)
	}
	for i, p := range params {
		frame.Bind(p.Name, args[i])
	}
	val, sig, err := e.evalBlock(method.Body, frame)
	if err != nil {
		return nil, err
	}
	switch sig {
	case Return, Normal:
		return val, nil
	default:
		return nil, lerr.New(lerr.Runtime, "break/continue outside of loop")
	}
}

func (e *Evaluator) lookupMethod(typeName, methodName string) (*ast.FunctionLiteral, bool) {
	methods, ok := e.Methods[typeName]
	if !ok {
		return nil, false
	}
	m, ok := methods[methodName]
	return m, ok
}

// registerMethods merges fns into Methods[typeName], later calls
// overwriting earlier entries of the same method name.
func (e *Evaluator) registerMethods(typeName string, fns []*ast.FunctionLiteral) {
	set, ok := e.Methods[typeName]
	if !ok {
		set = make(map[string]*ast.FunctionLiteral)
		e.Methods[typeName] = set
	}
	for _, fn := range fns {
		set[fn.Name] = fn
	}
}

// builtinOrNil looks up a name in the built-in table, consulted before
// ordinary variable resolution: builtins are reserved at call time, not
// at bind time.
func builtinOrNil(name string) (*objects.Builtin, bool) {
	return builtins.Lookup(name)
}
