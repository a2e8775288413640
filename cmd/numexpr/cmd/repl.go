package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/evallang/numexpr"
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	replNoBanner bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEvaluator()
		if err != nil {
			return err
		}
		return runRepl(cmd.InOrStdin(), cmd.OutOrStdout(), e)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVar(&replNoBanner, "no-banner", false, "suppress the startup banner")
}

// runRepl drives the loop over in, echoing results to out. Assignments of
// the form `name = expression` extend the session's variable bindings;
// anything else is evaluated against the current bindings.
func runRepl(in io.Reader, out io.Writer, e *numexpr.Evaluator) error {
	if !replNoBanner {
		fmt.Fprintln(out, "numexpr REPL — type an expression, 'name = expr' to bind a variable, or 'exit' to quit.")
	}
	vars := make(map[string]string)
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, promptStyle.Render("» "))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "exit" || line == "quit":
			return nil
		default:
			if name, expr, ok := strings.Cut(line, "="); ok && isIdentifier(strings.TrimSpace(name)) {
				vars[strings.TrimSpace(name)] = strings.TrimSpace(expr)
				fmt.Fprintf(out, "%s := %s\n", strings.TrimSpace(name), strings.TrimSpace(expr))
			} else {
				result, err := e.EvaluateWithVariables(line, vars)
				if err != nil {
					fmt.Fprintln(out, errStyle.Render(err.Error()))
				} else {
					fmt.Fprintln(out, result.String())
				}
			}
		}
		fmt.Fprint(out, promptStyle.Render("» "))
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
