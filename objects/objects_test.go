/*
File    : l/objects/objects_test.go
Author  : adapted from go-mix by Akash Maji
*/

package objects_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/objects"
)

func TestValueStringForms(t *testing.T) {
	require.Equal(t, "42", (&objects.Integer{Value: 42}).String())
	require.Equal(t, "3.5", (&objects.Float{Value: 3.5}).String())
	require.Equal(t, "hi", (&objects.String{Value: "hi"}).String())
	require.Equal(t, "true", (&objects.Bool{Value: true}).String())
	require.Equal(t, "none", (&objects.None{}).String())
}

func TestArrayString(t *testing.T) {
	arr := &objects.Array{Elements: []objects.Value{&objects.Integer{Value: 1}, &objects.Integer{Value: 2}}}
	require.Equal(t, "[1, 2]", arr.String())
}

func TestEnumStringWithAndWithoutPayload(t *testing.T) {
	bare := &objects.Enum{EnumName: "Opt", Variant: "None"}
	require.Equal(t, "Opt::None", bare.String())

	withData := &objects.Enum{EnumName: "Opt", Variant: "Some", Payload: &objects.Integer{Value: 7}}
	require.Equal(t, "Opt::Some(7)", withData.String())
}

func TestTypeTags(t *testing.T) {
	require.Equal(t, objects.IntType, (&objects.Integer{}).Type())
	require.Equal(t, objects.ArrayType, (&objects.Array{}).Type())
	require.Equal(t, objects.EnumType, (&objects.Enum{}).Type())
	require.Equal(t, objects.FunctionType, objects.Type("function"))
}

func TestExtractValue(t *testing.T) {
	v, err := objects.ExtractValue(&objects.Integer{Value: 9})
	require.NoError(t, err)
	require.Equal(t, int64(9), v)

	v, err = objects.ExtractValue(&objects.None{})
	require.NoError(t, err)
	require.Nil(t, v)

	_, err = objects.ExtractValue(&objects.Array{})
	require.Error(t, err)
}

func TestTruthy(t *testing.T) {
	require.True(t, objects.Truthy(&objects.Bool{Value: true}))
	require.False(t, objects.Truthy(&objects.Bool{Value: false}))
	require.False(t, objects.Truthy(&objects.None{}))
	require.True(t, objects.Truthy(&objects.Integer{Value: 0}))
}
