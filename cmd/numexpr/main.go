// Command numexpr is a CLI front end for the numexpr evaluation engine:
// one-shot expression evaluation, an interactive REPL, and a small JSON
// variable-store helper.
package main

import (
	"fmt"
	"os"

	"github.com/evallang/numexpr/cmd/numexpr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
