/*
File    : l/eval/eval_access.go
Author  : adapted from go-mix by Akash Maji
*/
package eval

import (
	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/objects"
	"github.com/l-lang/l/scope"
)

func (e *Evaluator) evalStructLiteral(ex *ast.StructLiteral, env *scope.Scope) (objects.Value, Signal, error) {
	def, ok := e.Structs[ex.Name]
	if !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "undefined struct %s", ex.Name)
	}
	fields := make(map[string]objects.Value, len(ex.Fields))
	for _, f := range ex.Fields {
		v, sig, err := e.evalExpr(f.Value, env)
		if err != nil || sig != Normal {
			return v, sig, err
		}
		fields[f.Name] = v
	}
	for _, decl := range def.Fields {
		if _, ok := fields[decl.Name]; !ok {
			return nil, Normal, lerr.New(lerr.Runtime, "struct literal %s is missing field %s", ex.Name, decl.Name)
		}
	}
	return &objects.Struct{Name: ex.Name, Fields: fields}, Normal, nil
}

func (e *Evaluator) evalFieldAccess(ex *ast.FieldAccess, env *scope.Scope) (objects.Value, Signal, error) {
	obj, sig, err := e.evalExpr(ex.Object, env)
	if err != nil || sig != Normal {
		return obj, sig, err
	}
	s, ok := obj.(*objects.Struct)
	if !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "cannot access field %s on %s", ex.Field, obj.Type())
	}
	v, ok := s.Fields[ex.Field]
	if !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "struct %s has no field %s", s.Name, ex.Field)
	}
	return v, Normal, nil
}

func (e *Evaluator) evalEnumVariant(ex *ast.EnumVariantExpr, env *scope.Scope) (objects.Value, Signal, error) {
	def, ok := e.Enums[ex.Enum]
	if !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "undefined enum %s", ex.Enum)
	}
	var decl *ast.EnumVariantDecl
	for i := range def.Variants {
		if def.Variants[i].Name == ex.Variant {
			decl = &def.Variants[i]
			break
		}
	}
	if decl == nil {
		return nil, Normal, lerr.New(lerr.Runtime, "enum %s has no variant %s", ex.Enum, ex.Variant)
	}
	var payload objects.Value
	if ex.Data != nil {
		v, sig, err := e.evalExpr(ex.Data, env)
		if err != nil || sig != Normal {
			return v, sig, err
		}
		payload = v
	}
	return &objects.Enum{EnumName: ex.Enum, Variant: ex.Variant, Payload: payload}, Normal, nil
}
