/*
File    : l/builtins/print.go
Author  : adapted from go-mix by Akash Maji
*/

// print/println are carried over from the teacher's objects/builtins.go
// print/println pair, narrowed from variadic space-joined output to the
// single-value form used throughout this catalogue. Output goes through
// a package-level io.Writer instead of a writer threaded through every
// Call signature, so the registry's Call shape stays Call(args)
// (Value, error) for every other builtin -- SetOutput lets the evaluator
// (file/REPL mode) and tests redirect it.
package builtins

import (
	"fmt"
	"io"
	"os"

	"github.com/l-lang/l/objects"
)

var out io.Writer = os.Stdout

// SetOutput redirects print/println output, used by the REPL to write to
// the writer it was started with and by tests to capture output into a
// buffer.
func SetOutput(w io.Writer) { out = w }

func init() {
	register(&objects.Builtin{Name: "print", Call: biPrint})
	register(&objects.Builtin{Name: "println", Call: biPrintln})
}

// biPrint writes its argument followed by a newline. print and println
// are the same operation here rather than print omitting the trailing
// newline as the teacher's did.
func biPrint(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("print", 1, len(args))
	}
	fmt.Fprintln(out, args[0].String())
	return &objects.None{}, nil
}

func biPrintln(args []objects.Value) (objects.Value, error) {
	return biPrint(args)
}
