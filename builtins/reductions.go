/*
File    : l/builtins/reductions.go
Author  : adapted from go-mix by Akash Maji
*/

// gpu_sum/gpu_product/gpu_mean/parallel_sum are sequential implementations
// whose names document intent, not behavior -- there is no worker pool or
// device dispatch anywhere in this package. Ported in spirit from
// original_source/src/stdlib.rs's plain numeric reduction helpers
// (sum/min/max), which follow the same single-pass-over-an-array shape.
package builtins

import "github.com/l-lang/l/objects"

func init() {
	register(&objects.Builtin{Name: "gpu_sum", Call: biGpuSum})
	register(&objects.Builtin{Name: "gpu_product", Call: biGpuProduct})
	register(&objects.Builtin{Name: "gpu_mean", Call: biGpuMean})
	register(&objects.Builtin{Name: "parallel_sum", Call: biGpuSum})
}

// numericElements extracts a []float64 plus whether every element was an
// Integer (so the caller can decide to return an Integer result).
func numericElements(name string, v objects.Value) ([]float64, bool, error) {
	arr, err := asArray(name, 1, v)
	if err != nil {
		return nil, false, err
	}
	out := make([]float64, len(arr.Elements))
	allInt := true
	for i, e := range arr.Elements {
		f, ok := asFloat(e)
		if !ok {
			return nil, false, typeErr(name, 1, objects.IntType, e.Type())
		}
		if _, isInt := e.(*objects.Integer); !isInt {
			allInt = false
		}
		out[i] = f
	}
	return out, allInt, nil
}

func biGpuSum(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("gpu_sum", 1, len(args))
	}
	nums, allInt, err := numericElements("gpu_sum", args[0])
	if err != nil {
		return nil, err
	}
	var sum float64
	for _, n := range nums {
		sum += n
	}
	if allInt {
		return &objects.Integer{Value: int64(sum)}, nil
	}
	return &objects.Float{Value: sum}, nil
}

func biGpuProduct(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("gpu_product", 1, len(args))
	}
	nums, allInt, err := numericElements("gpu_product", args[0])
	if err != nil {
		return nil, err
	}
	product := 1.0
	for _, n := range nums {
		product *= n
	}
	if allInt {
		return &objects.Integer{Value: int64(product)}, nil
	}
	return &objects.Float{Value: product}, nil
}

func biGpuMean(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("gpu_mean", 1, len(args))
	}
	nums, _, err := numericElements("gpu_mean", args[0])
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return &objects.Float{Value: 0}, nil
	}
	var sum float64
	for _, n := range nums {
		sum += n
	}
	return &objects.Float{Value: sum / float64(len(nums))}, nil
}
