// Package cli provides the command-line interface for the calculator.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	calculator "github.com/zachh-cs/Calculator"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var verb string
	rootCmd := &cobra.Command{
		Use:   "calculator [expression ...]",
		Short: "A PEMDAS arithmetic calculator",
		Long: `Calculator evaluates arithmetic expressions with standard operator
precedence, right-associative exponentiation (^ or **), implicit
multiplication such as 2(3+4), and scientific-notation literals.

Expressions given as arguments are evaluated one per argument. With no
arguments an interactive prompt starts; enter q to quit it.`,
		Example: `  # One-shot evaluation
  calculator '2+3*4' '2^3^2'

  # Interactive prompt
  calculator`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runREPL(cmd, verb)
			}
			for _, arg := range args {
				r, err := calculator.Evaluate(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), verb+"\n", r)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)
	rootCmd.Flags().StringVar(&verb, "fmt", "%g", "result formatting verb")
	rootCmd.AddCommand(newVersionCommand(Version))
	return rootCmd
}
