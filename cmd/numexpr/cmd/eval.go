package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	evalVars []string
	evalFile string
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION",
	Short: "Evaluate a single expression and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := parseVarAssignments(evalVars)
		if err != nil {
			return err
		}
		if evalFile != "" {
			fileVars, err := loadVarsFile(evalFile)
			if err != nil {
				return err
			}
			for name, expr := range fileVars {
				if _, overridden := vars[name]; !overridden {
					if vars == nil {
						vars = make(map[string]string)
					}
					vars[name] = expr
				}
			}
		}
		e, err := newEvaluator()
		if err != nil {
			return err
		}
		result, err := e.EvaluateWithVariables(args[0], vars)
		if err != nil {
			return err
		}
		fmt.Println(result.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArrayVar(&evalVars, "var", nil, "variable binding NAME=EXPRESSION, repeatable")
	evalCmd.Flags().StringVar(&evalFile, "file", "", "load variable bindings from a JSON store (see 'vars'); --var takes precedence")
}

// parseVarAssignments turns a repeated --var NAME=EXPRESSION flag into the
// binding map EvaluateWithVariables expects.
func parseVarAssignments(assignments []string) (map[string]string, error) {
	if len(assignments) == 0 {
		return nil, nil
	}
	vars := make(map[string]string, len(assignments))
	for _, a := range assignments {
		name, expr, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --var binding %q, expected NAME=EXPRESSION", a)
		}
		vars[strings.TrimSpace(name)] = expr
	}
	return vars, nil
}
