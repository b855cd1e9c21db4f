/*
File    : l/scope/scope_test.go
Author  : adapted from go-mix by Akash Maji
*/

package scope_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/objects"
	"github.com/l-lang/l/scope"
)

func TestBindAndLookUpInSameFrame(t *testing.T) {
	s := scope.NewScope(nil)
	_, existed := s.Bind("x", &objects.Integer{Value: 1})
	require.False(t, existed)

	v, ok := s.LookUp("x")
	require.True(t, ok)
	require.Equal(t, &objects.Integer{Value: 1}, v)
}

func TestBindReportsRedeclaration(t *testing.T) {
	s := scope.NewScope(nil)
	s.Bind("x", &objects.Integer{Value: 1})
	_, existed := s.Bind("x", &objects.Integer{Value: 2})
	require.True(t, existed)
}

func TestLookUpWalksParentChain(t *testing.T) {
	global := scope.NewScope(nil)
	global.Bind("g", &objects.String{Value: "global"})
	child := scope.NewScope(global)

	v, ok := child.LookUp("g")
	require.True(t, ok)
	require.Equal(t, &objects.String{Value: "global"}, v)
}

func TestLookUpMissingReturnsFalse(t *testing.T) {
	s := scope.NewScope(nil)
	_, ok := s.LookUp("nope")
	require.False(t, ok)
}

func TestAssignUpdatesEnclosingFrame(t *testing.T) {
	global := scope.NewScope(nil)
	global.Bind("counter", &objects.Integer{Value: 0})
	child := scope.NewScope(global)

	frame, ok := child.Assign("counter", &objects.Integer{Value: 1})
	require.True(t, ok)
	require.Same(t, global, frame)

	v, _ := global.LookUp("counter")
	require.Equal(t, &objects.Integer{Value: 1}, v)

	_, childHasOwn := child.Variables["counter"]
	require.False(t, childHasOwn)
}

func TestAssignUnboundReturnsFalse(t *testing.T) {
	s := scope.NewScope(nil)
	frame, ok := s.Assign("nope", &objects.Integer{Value: 1})
	require.False(t, ok)
	require.Nil(t, frame)
}

func TestChildBindDoesNotLeakToParent(t *testing.T) {
	parent := scope.NewScope(nil)
	child := scope.NewScope(parent)
	child.Bind("local", &objects.Integer{Value: 5})

	_, ok := parent.LookUp("local")
	require.False(t, ok)
}
