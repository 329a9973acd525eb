package main

import (
	"fmt"

	"github.com/benfrussell/AutoCopilot/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the instruction tree visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the selected mission tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		cp, err := env.newCopilot(cmd)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(cp.Instructions()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
