/*
File    : l/scope/scope.go
Author  : adapted from go-mix by Akash Maji
*/

// Package scope implements L's lexical environment: a chain of frames
// linked by Parent pointers. Go's tracing GC is what makes a plain
// pointer chain safe here even though mutually recursive closures can
// form a cycle through captured scopes -- no arena or handle-indexing is
// needed, unlike a non-GC'd host.
package scope

import "github.com/l-lang/l/objects"

// Scope is one frame in the environment chain: a set of name->value
// bindings plus a pointer to the lexically enclosing frame. nil Parent
// marks the global frame.
type Scope struct {
	Variables map[string]objects.Value
	Parent    *Scope
}

// NewScope creates a new frame nested inside parent (nil for the global
// frame).
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Value),
		Parent:    parent,
	}
}

// LookUp searches this frame and, on miss, every enclosing frame in turn.
// The returned value is a deep copy (objects.Clone) of what is bound, not
// the stored value itself: struct (and array, and enum) values have copy,
// not reference, semantics, so mutating a struct reached through a
// parameter or a second alias never affects the binding it was read from.
func (s *Scope) LookUp(name string) (objects.Value, bool) {
	if v, ok := s.Variables[name]; ok {
		return objects.Clone(v), true
	}
	if s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return nil, false
}

// Bind creates or overwrites a binding in the current frame only, never
// touching a parent. Returns whether name already existed in this frame
// (a `let` redeclaration in the same block).
func (s *Scope) Bind(name string, val objects.Value) (string, bool) {
	_, has := s.Variables[name]
	s.Variables[name] = val
	return name, has
}

// Assign updates an existing binding in the frame where it was originally
// bound, searching outward through Parent. This is what lets a closure
// mutate a variable captured from an enclosing frame instead of shadowing
// it. Returns the frame where the update happened, or (nil, false) if name
// is unbound anywhere in the chain.
func (s *Scope) Assign(name string, val objects.Value) (*Scope, bool) {
	if _, ok := s.Variables[name]; ok {
		s.Variables[name] = val
		return s, true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, val)
	}
	return nil, false
}
