/*
File    : l/builtins/builtins_test.go
Author  : adapted from go-mix by Akash Maji
*/

package builtins_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/builtins"
	"github.com/l-lang/l/objects"
)

func call(t *testing.T, name string, args ...objects.Value) objects.Value {
	t.Helper()
	b, ok := builtins.Lookup(name)
	require.True(t, ok, "builtin %q not registered", name)
	v, err := b.Call(args)
	require.NoError(t, err)
	return v
}

func callErr(t *testing.T, name string, args ...objects.Value) error {
	t.Helper()
	b, ok := builtins.Lookup(name)
	require.True(t, ok, "builtin %q not registered", name)
	_, err := b.Call(args)
	return err
}

func ints(vals ...int64) *objects.Array {
	elems := make([]objects.Value, len(vals))
	for i, v := range vals {
		elems[i] = &objects.Integer{Value: v}
	}
	return &objects.Array{Elements: elems}
}

func TestLen(t *testing.T) {
	require.Equal(t, int64(5), call(t, "len", &objects.String{Value: "hello"}).(*objects.Integer).Value)
	require.Equal(t, int64(3), call(t, "len", ints(1, 2, 3)).(*objects.Integer).Value)
}

func TestToString(t *testing.T) {
	require.Equal(t, "42", call(t, "to_string", &objects.Integer{Value: 42}).(*objects.String).Value)
}

func TestRangeExclusiveEnd(t *testing.T) {
	arr := call(t, "range", &objects.Integer{Value: 1}, &objects.Integer{Value: 11}).(*objects.Array)
	require.Len(t, arr.Elements, 10)
	require.Equal(t, int64(1), arr.Elements[0].(*objects.Integer).Value)
	require.Equal(t, int64(10), arr.Elements[9].(*objects.Integer).Value)
}

func TestPushDoesNotMutateOriginal(t *testing.T) {
	orig := ints(1, 2)
	pushed := call(t, "push", orig, &objects.Integer{Value: 3}).(*objects.Array)
	require.Len(t, orig.Elements, 2)
	require.Len(t, pushed.Elements, 3)
	require.Equal(t, int64(3), pushed.Elements[2].(*objects.Integer).Value)
}

func TestPopEmptyArrayErrors(t *testing.T) {
	err := callErr(t, "pop", &objects.Array{})
	require.Error(t, err)
}

func TestAppendConcatenates(t *testing.T) {
	out := call(t, "append", ints(1, 2), ints(3, 4)).(*objects.Array)
	require.Len(t, out.Elements, 4)
}

func TestReverse(t *testing.T) {
	out := call(t, "reverse", ints(1, 2, 3)).(*objects.Array)
	require.Equal(t, []int64{3, 2, 1}, []int64{
		out.Elements[0].(*objects.Integer).Value,
		out.Elements[1].(*objects.Integer).Value,
		out.Elements[2].(*objects.Integer).Value,
	})
}

func TestFirstLast(t *testing.T) {
	arr := ints(10, 20, 30)
	require.Equal(t, int64(10), call(t, "first", arr).(*objects.Integer).Value)
	require.Equal(t, int64(30), call(t, "last", arr).(*objects.Integer).Value)
}

func TestSliceOutOfRange(t *testing.T) {
	err := callErr(t, "slice", ints(1, 2, 3), &objects.Integer{Value: 0}, &objects.Integer{Value: 5})
	require.Error(t, err)
}

func TestSliceValid(t *testing.T) {
	out := call(t, "slice", ints(1, 2, 3, 4), &objects.Integer{Value: 1}, &objects.Integer{Value: 3}).(*objects.Array)
	require.Len(t, out.Elements, 2)
	require.Equal(t, int64(2), out.Elements[0].(*objects.Integer).Value)
}

func TestFlatten(t *testing.T) {
	nested := &objects.Array{Elements: []objects.Value{ints(1, 2), ints(3)}}
	out := call(t, "flatten", nested).(*objects.Array)
	require.Len(t, out.Elements, 3)
}

func TestUniqueDropsDuplicates(t *testing.T) {
	out := call(t, "unique", ints(1, 1, 2, 2, 3)).(*objects.Array)
	require.Len(t, out.Elements, 3)
}

func TestSortAscending(t *testing.T) {
	out := call(t, "sort", ints(3, 1, 2)).(*objects.Array)
	require.Equal(t, []int64{1, 2, 3}, []int64{
		out.Elements[0].(*objects.Integer).Value,
		out.Elements[1].(*objects.Integer).Value,
		out.Elements[2].(*objects.Integer).Value,
	})
}

func TestSortMixedTypesErrors(t *testing.T) {
	mixed := &objects.Array{Elements: []objects.Value{&objects.Integer{Value: 1}, &objects.String{Value: "x"}}}
	require.Error(t, callErr(t, "sort", mixed))
}

func TestSplitJoin(t *testing.T) {
	parts := call(t, "split", &objects.String{Value: "a,b,c"}, &objects.String{Value: ","}).(*objects.Array)
	require.Len(t, parts.Elements, 3)
	joined := call(t, "join", parts, &objects.String{Value: "-"}).(*objects.String)
	require.Equal(t, "a-b-c", joined.Value)
}

func TestContains(t *testing.T) {
	require.True(t, call(t, "contains", &objects.String{Value: "hello world"}, &objects.String{Value: "world"}).(*objects.Bool).Value)
	require.False(t, call(t, "contains", &objects.String{Value: "hello"}, &objects.String{Value: "xyz"}).(*objects.Bool).Value)
}

func TestSubstring(t *testing.T) {
	out := call(t, "substring", &objects.String{Value: "hello"}, &objects.Integer{Value: 1}, &objects.Integer{Value: 4}).(*objects.String)
	require.Equal(t, "ell", out.Value)
}

func TestMinMax(t *testing.T) {
	require.Equal(t, int64(2), call(t, "min", &objects.Integer{Value: 2}, &objects.Integer{Value: 5}).(*objects.Integer).Value)
	require.Equal(t, int64(5), call(t, "max", &objects.Integer{Value: 2}, &objects.Integer{Value: 5}).(*objects.Integer).Value)
}

func TestAbs(t *testing.T) {
	require.Equal(t, int64(3), call(t, "abs", &objects.Integer{Value: -3}).(*objects.Integer).Value)
}

func TestSqrtAndPow(t *testing.T) {
	require.InDelta(t, 3.0, call(t, "sqrt", &objects.Integer{Value: 9}).(*objects.Float).Value, 1e-9)
	require.Equal(t, int64(8), call(t, "pow", &objects.Integer{Value: 2}, &objects.Integer{Value: 3}).(*objects.Integer).Value)
}

func TestGpuReductions(t *testing.T) {
	require.Equal(t, int64(6), call(t, "gpu_sum", ints(1, 2, 3)).(*objects.Integer).Value)
	require.Equal(t, int64(6), call(t, "gpu_product", ints(1, 2, 3)).(*objects.Integer).Value)
	require.InDelta(t, 2.0, call(t, "gpu_mean", ints(1, 2, 3)).(*objects.Float).Value, 1e-9)
	require.Equal(t, int64(6), call(t, "parallel_sum", ints(1, 2, 3)).(*objects.Integer).Value)
}

func TestResultHelpers(t *testing.T) {
	ok := &objects.Enum{EnumName: "Result", Variant: "Ok", Payload: &objects.Integer{Value: 7}}
	errv := &objects.Enum{EnumName: "Result", Variant: "Err", Payload: &objects.String{Value: "bad"}}

	require.Equal(t, int64(7), call(t, "unwrap", ok).(*objects.Integer).Value)
	require.Error(t, callErr(t, "unwrap", errv))

	require.Equal(t, int64(7), call(t, "unwrap_or", ok, &objects.Integer{Value: 0}).(*objects.Integer).Value)
	require.Equal(t, int64(0), call(t, "unwrap_or", errv, &objects.Integer{Value: 0}).(*objects.Integer).Value)

	require.True(t, call(t, "is_ok", ok).(*objects.Bool).Value)
	require.True(t, call(t, "is_err", errv).(*objects.Bool).Value)

	some := &objects.Enum{EnumName: "Option", Variant: "Some", Payload: &objects.Integer{Value: 1}}
	none := &objects.Enum{EnumName: "Option", Variant: "None"}
	require.True(t, call(t, "is_some", some).(*objects.Bool).Value)
	require.True(t, call(t, "is_none", none).(*objects.Bool).Value)
}

func TestExpectOnErrReturnsMessage(t *testing.T) {
	errv := &objects.Enum{EnumName: "Result", Variant: "Err", Payload: &objects.String{Value: "bad"}}
	err := callErr(t, "expect", errv, &objects.String{Value: "boom"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestPrintWritesNewlineTerminatedValue(t *testing.T) {
	var buf bytes.Buffer
	builtins.SetOutput(&buf)
	defer builtins.SetOutput(os.Stdout)

	_ = call(t, "print", &objects.Integer{Value: 42})
	require.Equal(t, "42\n", buf.String())
}

func TestReadWriteFileRoundTrip(t *testing.T) {
	path := t.TempDir() + "/out.txt"
	_ = call(t, "write_file", &objects.String{Value: path}, &objects.String{Value: "hello"})
	out := call(t, "read_file", &objects.String{Value: path}).(*objects.String)
	require.Equal(t, "hello", out.Value)
}
