package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var varsFile string

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "Manage a JSON-backed variable store used by 'eval --file'",
}

var varsSetCmd = &cobra.Command{
	Use:   "set NAME EXPRESSION",
	Short: "Bind NAME to EXPRESSION in the variable store",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readVarsFile(varsFile)
		if err != nil {
			return err
		}
		updated, err := sjson.Set(doc, args[0], args[1])
		if err != nil {
			return fmt.Errorf("setting %q: %w", args[0], err)
		}
		return os.WriteFile(varsFile, []byte(updated), 0o644)
	},
}

var varsGetCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Print the expression bound to NAME",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readVarsFile(varsFile)
		if err != nil {
			return err
		}
		result := gjson.Get(doc, args[0])
		if !result.Exists() {
			return fmt.Errorf("no binding for %q in %s", args[0], varsFile)
		}
		fmt.Println(result.String())
		return nil
	},
}

var varsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every binding in the variable store",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readVarsFile(varsFile)
		if err != nil {
			return err
		}
		gjson.Parse(doc).ForEach(func(key, value gjson.Result) bool {
			fmt.Printf("%s = %s\n", key.String(), value.String())
			return true
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(varsCmd)
	varsCmd.PersistentFlags().StringVar(&varsFile, "file", "numexpr-vars.json", "path to the JSON variable store")
	varsCmd.AddCommand(varsSetCmd, varsGetCmd, varsListCmd)
}

func readVarsFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "{}", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(content), nil
}

// loadVarsFile reads path into a name->expression map suitable for
// EvaluateWithVariables, used by eval --file.
func loadVarsFile(path string) (map[string]string, error) {
	doc, err := readVarsFile(path)
	if err != nil {
		return nil, err
	}
	vars := make(map[string]string)
	gjson.Parse(doc).ForEach(func(key, value gjson.Result) bool {
		vars[key.String()] = value.String()
		return true
	})
	return vars, nil
}
