package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	calculator "github.com/zachh-cs/Calculator"
)

// runREPL runs the interactive read-eval-print loop. A lone q, in any case,
// quits before the evaluator sees the line.
func runREPL(cmd *cobra.Command, verb string) error {
	styles := newStyles()
	out := cmd.OutOrStdout()

	cfg := &readline.Config{
		Prompt:          styles.Prompt.Render("calc> "),
		InterruptPrompt: "^C",
		EOFPrompt:       "q",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".calculator_history")
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(out, styles.Banner.Render(bannerText))
	_, _ = fmt.Fprintln(out, styles.Muted.Render("Enter an expression, or q to quit."))
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "q") {
			break
		}

		r, err := calculator.Evaluate(line)
		if err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), styles.Error.Render("Error: "+err.Error()))
			continue
		}
		_, _ = fmt.Fprintf(out, styles.Result.Render(verb)+"\n", r)
	}

	_, _ = fmt.Fprintln(out, "Goodbye!")
	return nil
}
