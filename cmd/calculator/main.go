// Command calculator evaluates arithmetic expressions, either interactively
// or from its arguments.
package main

import (
	"fmt"
	"os"

	"github.com/zachh-cs/Calculator/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
