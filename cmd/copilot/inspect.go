package main

import (
	"fmt"
	"io"
	"os"

	autocopilot "github.com/benfrussell/AutoCopilot"
	"github.com/benfrussell/AutoCopilot/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the instruction tree as a readable outline",
	Long: `Renders the selected mission as a markdown outline. On a terminal the
outline is styled; otherwise the raw markdown is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		cp, err := env.newCopilot(cmd)
		if err != nil {
			return err
		}

		markdown := tui.Outline(cp.Instructions())
		out := cmd.OutOrStdout()

		raw, _ := cmd.Flags().GetBool("raw")
		if raw || !isTerminal(out) {
			fmt.Fprint(out, markdown)
			return nil
		}

		tui.PrintBanner(out, autocopilot.Version)
		render, err := tui.NewRenderer()
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		styled, err := render(markdown)
		if err != nil {
			return err
		}
		fmt.Fprint(out, styled)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("raw", false, "Print raw markdown even on a terminal")
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
