package main

import (
	"context"
	"fmt"
	"time"

	autocopilot "github.com/benfrussell/AutoCopilot"
	redisAdapter "github.com/benfrussell/AutoCopilot/pkg/adapters/redis"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the mission tree to Redis",
	Long:  `Serializes the selected mission to JSON and publishes it on the configured Redis channel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("redis") {
			env.cfg.Redis.Addr, _ = cmd.Flags().GetString("redis")
		}
		if cmd.Flags().Changed("channel") {
			env.cfg.Redis.Channel, _ = cmd.Flags().GetString("channel")
		}

		opts := []redisAdapter.Option{redisAdapter.WithChannel(env.cfg.Redis.Channel)}
		if strict, _ := cmd.Flags().GetBool("require-subscriber"); strict {
			opts = append(opts, redisAdapter.WithRequireSubscriber())
		}
		pub := redisAdapter.New(env.cfg.Redis.Addr, opts...)
		defer pub.Close()

		cp, err := env.newCopilot(cmd, autocopilot.WithPublisher(pub))
		if err != nil {
			return err
		}

		timeout, _ := cmd.Flags().GetDuration("timeout")
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if err := cp.Publish(ctx); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "published mission %q to %s\n", env.mission, pub.Channel())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().String("redis", "localhost:6379", "Redis address")
	publishCmd.Flags().String("channel", "autocopilot:instructions", "Redis Pub/Sub channel")
	publishCmd.Flags().Bool("require-subscriber", false, "Fail if no executor is subscribed")
	publishCmd.Flags().Duration("timeout", 5*time.Second, "Publish timeout")
}
