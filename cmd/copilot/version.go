package main

import (
	"fmt"
	"strings"

	autocopilot "github.com/benfrussell/AutoCopilot"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of copilot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "copilot version %s\n", strings.TrimSpace(autocopilot.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
