/*
File    : l/builtins/result.go
Author  : adapted from go-mix by Akash Maji
*/

// Result and Option are not distinguished runtime types: L has no
// compiler-recognized Result/Option -- they are ordinary enum values
// (conventionally `Result::Ok(v)`/`Result::Err(e)` and
// `Option::Some(v)`/`Option::None`, built with the same enum-variant
// construction syntax as any user enum) and these helpers pattern-match
// on the variant name rather than a distinct tag.
package builtins

import (
	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/objects"
)

func init() {
	register(&objects.Builtin{Name: "unwrap", Call: biUnwrap})
	register(&objects.Builtin{Name: "unwrap_or", Call: biUnwrapOr})
	register(&objects.Builtin{Name: "expect", Call: biExpect})
	register(&objects.Builtin{Name: "is_ok", Call: biIsOk})
	register(&objects.Builtin{Name: "is_err", Call: biIsErr})
	register(&objects.Builtin{Name: "is_some", Call: biIsSome})
	register(&objects.Builtin{Name: "is_none", Call: biIsNone})
}

func asEnum(name string, v objects.Value) (*objects.Enum, error) {
	e, ok := v.(*objects.Enum)
	if !ok {
		return nil, lerr.New(lerr.Runtime, "argument to `%s` must be a Result or Option enum value, got %s", name, v.Type())
	}
	return e, nil
}

func biUnwrap(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("unwrap", 1, len(args))
	}
	e, err := asEnum("unwrap", args[0])
	if err != nil {
		return nil, err
	}
	switch e.Variant {
	case "Ok", "Some":
		if e.Payload == nil {
			return &objects.None{}, nil
		}
		return e.Payload, nil
	default:
		return nil, lerr.New(lerr.Runtime, "called `unwrap` on %s", e.String())
	}
}

func biUnwrapOr(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("unwrap_or", 2, len(args))
	}
	e, err := asEnum("unwrap_or", args[0])
	if err != nil {
		return nil, err
	}
	switch e.Variant {
	case "Ok", "Some":
		if e.Payload == nil {
			return &objects.None{}, nil
		}
		return e.Payload, nil
	default:
		return args[1], nil
	}
}

func biExpect(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("expect", 2, len(args))
	}
	e, err := asEnum("expect", args[0])
	if err != nil {
		return nil, err
	}
	msg, ok := args[1].(*objects.String)
	if !ok {
		return nil, typeErr("expect", 2, objects.StringType, args[1].Type())
	}
	switch e.Variant {
	case "Ok", "Some":
		if e.Payload == nil {
			return &objects.None{}, nil
		}
		return e.Payload, nil
	default:
		return nil, lerr.New(lerr.Runtime, "%s", msg.Value)
	}
}

func biIsOk(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("is_ok", 1, len(args))
	}
	e, err := asEnum("is_ok", args[0])
	if err != nil {
		return nil, err
	}
	return &objects.Bool{Value: e.Variant == "Ok"}, nil
}

func biIsErr(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("is_err", 1, len(args))
	}
	e, err := asEnum("is_err", args[0])
	if err != nil {
		return nil, err
	}
	return &objects.Bool{Value: e.Variant == "Err"}, nil
}

func biIsSome(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("is_some", 1, len(args))
	}
	e, err := asEnum("is_some", args[0])
	if err != nil {
		return nil, err
	}
	return &objects.Bool{Value: e.Variant == "Some"}, nil
}

func biIsNone(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("is_none", 1, len(args))
	}
	e, err := asEnum("is_none", args[0])
	if err != nil {
		return nil, err
	}
	return &objects.Bool{Value: e.Variant == "None"}, nil
}
