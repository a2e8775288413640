package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the numexpr version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("numexpr version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
