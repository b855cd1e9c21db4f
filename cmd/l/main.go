/*
File    : l/cmd/l/main.go
Author  : adapted from go-mix by Akash Maji
*/

// Command l is the entry point for the L interpreter/compiler: run, build,
// check, fmt subcommands plus a bare REPL when invoked with none.
package main

import (
	"fmt"
	"os"

	"github.com/l-lang/l/cmd/l/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
