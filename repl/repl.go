/*
File    : l/repl/repl.go
Author  : adapted from go-mix by Akash Maji
*/

// Package repl implements the interactive read-eval-print loop: enter L
// code line by line, see results immediately, navigate history with the
// arrow keys, and get colored feedback for errors versus successful
// results. Grounded on the teacher's repl.Repl, rewired to L's own
// lexer/parser/checker/evaluator and kept on readline + fatih/color for
// line editing and colorized output.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/l-lang/l/builtins"
	"github.com/l-lang/l/checker"
	"github.com/l-lang/l/eval"
	"github.com/l-lang/l/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's configuration: banner text, version,
// and the prompt shown to the user.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a Repl with the given banner/version/prompt fields.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and basic usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to L!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop until the user types .exit, hits EOF, or
// readline itself errors. A single Evaluator persists across lines so
// bindings made on one line are visible to the next.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	builtins.SetOutput(writer)
	evaluator := eval.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, evaluator)
	}
}

// evalLine parses, advisory-typechecks, and evaluates one line, printing
// errors in red and warnings and the resulting value in yellow. A panic
// recovery boundary keeps one bad line from killing the session, the
// same robustness the teacher's REPL offered.
func (r *Repl) evalLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p := parser.NewParser(line)
	prog := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors {
			redColor.Fprintf(writer, "%s\n", e.Error())
		}
		return
	}

	for _, warn := range checker.Check(prog) {
		yellowColor.Fprintf(writer, "warning: %s\n", warn.Error())
	}

	result, err := evaluator.Run(prog)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
