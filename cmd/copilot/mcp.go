package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/benfrussell/AutoCopilot/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the mission tree as an MCP server",
	Long:  `Starts a Model Context Protocol server on stdio, or over SSE when a port is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			env.cfg.MCP.Port, _ = cmd.Flags().GetInt("port")
		}

		cp, err := env.newCopilot(cmd)
		if err != nil {
			return err
		}
		srv := mcp.NewServer(cp, env.logger)

		if env.cfg.MCP.Port == 0 {
			return srv.ServeStdio()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.ServeSSE(ctx, env.cfg.MCP.Port)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Int("port", 0, "Serve over SSE on this port instead of stdio")
}
