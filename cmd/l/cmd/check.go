/*
File    : l/cmd/l/cmd/check.go
Author  : adapted from go-mix by Akash Maji
*/

package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/l-lang/l/checker"
	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Lex, parse, and type-check a source file; type errors are fatal",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", lerr.New(lerr.IO, "could not read %s: %v", args[0], err).Error())
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

	errs := checker.Check(prog)
	if len(errs) > 0 {
		for _, e := range errs {
			color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", e.Error())
		}
		os.Exit(1)
	}
	return nil
}
