/*
File    : l/cmd/l/cmd/run.go
Author  : adapted from go-mix by Akash Maji
*/

package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/l-lang/l/builtins"
	"github.com/l-lang/l/checker"
	"github.com/l-lang/l/eval"
	"github.com/l-lang/l/parser"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Lex, parse, type-check (warnings only), and evaluate a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "IO Error: could not read %s: %v\n", args[0], err)
		os.Exit(1)
	}

	p := parser.NewParser(string(src))
	prog := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors {
			color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", e.Error())
		}
		os.Exit(1)
	}

	for _, warn := range checker.Check(prog) {
		color.New(color.FgYellow).Fprintf(os.Stderr, "warning: %s\n", warn.Error())
	}

	builtins.SetOutput(os.Stdout)
	evaluator := eval.New()
	if _, err := evaluator.Run(prog); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
	return nil
}
