package main

import (
	"fmt"
	"strings"

	"github.com/benfrussell/AutoCopilot/pkg/domain"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List action kinds and their parameters",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, spec := range domain.ActionCatalog() {
			fmt.Fprintf(out, "%-20s (%s)\n", spec.Kind, strings.Join(spec.Parameters.Names(), ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
