/*
File    : l/ast/types.go
Author  : adapted from go-mix by Akash Maji
*/
package ast

// TKind is the closed set of type constructors L's type expressions
// name, including Infer for positions where the checker must unify with
// context. Infer must never leak into a runtime check (the evaluator
// works on values, never on TypeExpr, so this is enforced structurally
// rather than by a runtime assertion).
type TKind string

const (
	TInt      TKind = "int"
	TFloat    TKind = "float"
	TString   TKind = "string"
	TBool     TKind = "bool"
	TArray    TKind = "array"
	TNamed    TKind = "named" // struct or enum, by Name
	TFunction TKind = "function"
	TNone     TKind = "none"
	TInfer    TKind = "infer"
)

// TypeExpr is the closed type sum. Only the fields relevant to Kind are
// populated: ElemType for TArray, Name for TNamed, ParamTypes/ReturnType
// for TFunction.
type TypeExpr struct {
	Kind       TKind
	ElemType   *TypeExpr
	Name       string
	ParamTypes []*TypeExpr
	ReturnType *TypeExpr
}

func (t *TypeExpr) String() string {
	if t == nil {
		return "<infer>"
	}
	switch t.Kind {
	case TArray:
		return "array<" + t.ElemType.String() + ">"
	case TNamed:
		return t.Name
	case TFunction:
		s := "fn("
		for i, p := range t.ParamTypes {
			if i > 0 {
				s += ", "
			}
			s += p.String()
		}
		s += ")"
		if t.ReturnType != nil {
			s += " -> " + t.ReturnType.String()
		}
		return s
	default:
		return string(t.Kind)
	}
}
