package main

import (
	"fmt"
	"log/slog"
	"os"

	autocopilot "github.com/benfrussell/AutoCopilot"
	"github.com/benfrussell/AutoCopilot/internal/config"
	"github.com/benfrussell/AutoCopilot/internal/logging"
	"github.com/benfrussell/AutoCopilot/internal/mission"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "copilot",
	Short: "AutoCopilot builds and serializes mission instruction trees",
	Long: `AutoCopilot models the mission script of an autonomous vehicle as a tree of
instructions and hands it, serialized, to the executor that flies the vehicle.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().String("mission", "demo", "Built-in mission to load (demo, nested)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("indent", false, "Pretty-print JSON output")
}

// runtimeEnv is what every command needs: configuration, a logger and the mission.
type runtimeEnv struct {
	cfg     config.Config
	logger  *slog.Logger
	mission string
}

func loadEnv(cmd *cobra.Command) (*runtimeEnv, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	name, _ := cmd.Flags().GetString("mission")
	return &runtimeEnv{
		cfg:     cfg,
		logger:  logging.New(level, format),
		mission: name,
	}, nil
}

// newCopilot builds a Copilot holding the selected mission.
func (env *runtimeEnv) newCopilot(cmd *cobra.Command, opts ...autocopilot.Option) (*autocopilot.Copilot, error) {
	root, ok := mission.ByName(env.mission)
	if !ok {
		return nil, fmt.Errorf("unknown mission %q (available: %v)", env.mission, mission.Names())
	}
	indent, _ := cmd.Flags().GetBool("indent")

	base := []autocopilot.Option{
		autocopilot.WithLogger(env.logger),
		autocopilot.WithIndent(indent),
	}
	cp := autocopilot.New(append(base, opts...)...)
	cp.SetInstructions(root)
	return cp, nil
}
