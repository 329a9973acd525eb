package main

import (
	"fmt"

	"github.com/benfrussell/AutoCopilot/pkg/codec"
	"github.com/spf13/cobra"
)

var serializeCmd = &cobra.Command{
	Use:   "serialize",
	Short: "Print the mission instruction tree",
	Long:  `Serializes the selected mission to JSON (default) or YAML on stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("format")
		format, err := codec.ParseFormat(name)
		if err != nil {
			return err
		}

		cp, err := env.newCopilot(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := cp.Encode(out, format); err != nil {
			return err
		}
		if format == codec.FormatJSON {
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serializeCmd)
	serializeCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
}
