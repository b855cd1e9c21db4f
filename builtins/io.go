/*
File    : l/builtins/io.go
Author  : adapted from go-mix by Akash Maji
*/

// read_file/write_file implement a whole-file, no-locking I/O contract
// directly, replacing the teacher's stateful fopen/fclose/fread/fwrite/
// fseek handle table (go-mix file/file.go) -- L's builtin catalogue only
// calls for the two whole-file operations, so keeping a handle table
// around would be unexercised surface (see DESIGN.md's "file/file.go"
// deletion entry).
package builtins

import (
	"os"

	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/objects"
)

func init() {
	register(&objects.Builtin{Name: "read_file", Call: biReadFile})
	register(&objects.Builtin{Name: "write_file", Call: biWriteFile})
}

func biReadFile(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("read_file", 1, len(args))
	}
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, typeErr("read_file", 1, objects.StringType, args[0].Type())
	}
	data, err := os.ReadFile(path.Value)
	if err != nil {
		return nil, lerr.New(lerr.IO, "read_file %q: %v", path.Value, err)
	}
	return &objects.String{Value: string(data)}, nil
}

func biWriteFile(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("write_file", 2, len(args))
	}
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, typeErr("write_file", 1, objects.StringType, args[0].Type())
	}
	content, ok := args[1].(*objects.String)
	if !ok {
		return nil, typeErr("write_file", 2, objects.StringType, args[1].Type())
	}
	if err := os.WriteFile(path.Value, []byte(content.Value), 0o644); err != nil {
		return nil, lerr.New(lerr.IO, "write_file %q: %v", path.Value, err)
	}
	return &objects.None{}, nil
}
