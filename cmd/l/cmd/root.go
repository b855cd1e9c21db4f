/*
File    : l/cmd/l/cmd/root.go
Author  : adapted from go-mix by Akash Maji
*/

// Package cmd wires the cobra command tree for the l binary: run, build,
// check, fmt, and a bare REPL when no subcommand is given (grounded on
// the CWBudde-go-dws cmd/dwscript/cmd layout, since the teacher itself
// had no subcommand structure -- it distinguished REPL/file/server mode
// by counting os.Args).
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/l-lang/l/repl"
)

const (
	version = "0.1.0"
	author  = "the L project"
	license = "MIT"
	line    = "----------------------------------------------------------------"
	prompt  = "L >>> "
	banner  = `
 ██╗
 ██║
 ██║
 ██║
 ███████╗
 ╚══════╝
`
)

var rootCmd = &cobra.Command{
	Use:     "l",
	Short:   "L is a small interpreted expression-oriented language",
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := repl.New(banner, version, author, line, license, prompt)
		r.Start(os.Stdout)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	color.NoColor = false
}
