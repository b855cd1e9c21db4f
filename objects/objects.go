/*
File    : l/objects/objects.go
Author  : adapted from go-mix by Akash Maji
*/

// Package objects defines L's runtime value representation: the closed
// set of value kinds (int, float, string, bool, array, struct, enum
// instance, function, none). Every concrete type implements Value,
// generalized from the teacher's GoMixObject interface -- this version
// collapses the teacher's separate ToString (display)/ToObject (debug)
// registers into a single String(), since L has no REPL object-inspector
// mode that needs the second form.
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the runtime kind of a Value.
type Type string

const (
	IntType      Type = "int"
	FloatType    Type = "float"
	StringType   Type = "string"
	BoolType     Type = "bool"
	ArrayType    Type = "array"
	StructType   Type = "struct"
	EnumType     Type = "enum"
	FunctionType Type = "function"
	NoneType     Type = "none"
)

// Value is implemented by every L runtime value.
type Value interface {
	Type() Type
	String() string
}

// Integer is a 64-bit signed integer value.
type Integer struct{ Value int64 }

func (*Integer) Type() Type          { return IntType }
func (i *Integer) String() string    { return strconv.FormatInt(i.Value, 10) }

// Float is a 64-bit floating-point value.
type Float struct{ Value float64 }

func (*Float) Type() Type         { return FloatType }
func (f *Float) String() string   { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// String is a text value.
type String struct{ Value string }

func (*String) Type() Type        { return StringType }
func (s *String) String() string  { return s.Value }

// Bool is a boolean value.
type Bool struct{ Value bool }

func (*Bool) Type() Type         { return BoolType }
func (b *Bool) String() string   { return strconv.FormatBool(b.Value) }

// None is L's unit/absent value. There is exactly one meaningful instance,
// but it is not enforced as a singleton since equality is by value, not
// identity, for every L value.
type None struct{}

func (*None) Type() Type       { return NoneType }
func (*None) String() string   { return "none" }

// Array is a mutable, homogeneous-by-convention (not enforced at runtime)
// sequence of values.
type Array struct{ Elements []Value }

func (*Array) Type() Type { return ArrayType }
func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Struct is an instance of a named struct type: a name plus a field map.
// Fields present in the struct definition but not supplied at construction
// are not entered into the map (the evaluator reports a missing-field
// error at construction time instead).
type Struct struct {
	Name   string
	Fields map[string]Value
}

func (*Struct) Type() Type { return StructType }
func (s *Struct) String() string {
	parts := make([]string, 0, len(s.Fields))
	for k, v := range s.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.String()))
	}
	return s.Name + " { " + strings.Join(parts, ", ") + " }"
}

// Enum is an instance of one variant of a named enum type, carrying an
// optional boxed payload when the variant was declared with one.
type Enum struct {
	EnumName string
	Variant  string
	Payload  Value // nil when the variant carries no data
}

func (*Enum) Type() Type { return EnumType }
func (e *Enum) String() string {
	if e.Payload == nil {
		return e.EnumName + "::" + e.Variant
	}
	return e.EnumName + "::" + e.Variant + "(" + e.Payload.String() + ")"
}

// ExtractValue extracts the raw Go value from a Value, for code that
// needs to cross into native Go APIs (file I/O, string formatting).
func ExtractValue(v Value) (interface{}, error) {
	switch val := v.(type) {
	case *Integer:
		return val.Value, nil
	case *Float:
		return val.Value, nil
	case *String:
		return val.Value, nil
	case *Bool:
		return val.Value, nil
	case *None:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", v.Type())
	}
}

// Clone returns an independent copy of v: a Struct's field map (and every
// field value, recursively), an Array's element slice (and every element,
// recursively), and an Enum's payload are all deep-copied; every other
// kind is immutable once constructed and is returned unchanged. This is
// what makes struct values behave as copies rather than shared references
// once they pass through a variable read -- the struct itself has no
// notion of identity, only of content.
func Clone(v Value) Value {
	switch val := v.(type) {
	case *Struct:
		fields := make(map[string]Value, len(val.Fields))
		for k, fv := range val.Fields {
			fields[k] = Clone(fv)
		}
		return &Struct{Name: val.Name, Fields: fields}
	case *Array:
		elems := make([]Value, len(val.Elements))
		for i, ev := range val.Elements {
			elems[i] = Clone(ev)
		}
		return &Array{Elements: elems}
	case *Enum:
		var payload Value
		if val.Payload != nil {
			payload = Clone(val.Payload)
		}
		return &Enum{EnumName: val.EnumName, Variant: val.Variant, Payload: payload}
	default:
		return v
	}
}

// Truthy reports whether v counts as true in a condition position. Only
// Bool values are permitted by the type checker in condition position;
// this is the evaluator-side fallback used when a check was skipped
// (run's advisory type-check mode) or could not run.
func Truthy(v Value) bool {
	if b, ok := v.(*Bool); ok {
		return b.Value
	}
	return v.Type() != NoneType
}
