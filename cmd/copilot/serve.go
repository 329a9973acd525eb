package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	autocopilot "github.com/benfrussell/AutoCopilot"
	httpAdapter "github.com/benfrussell/AutoCopilot/pkg/adapters/http"
	redisAdapter "github.com/benfrussell/AutoCopilot/pkg/adapters/redis"
	"github.com/benfrussell/AutoCopilot/pkg/observability"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only HTTP server",
	Long: `Serves the mission tree over HTTP (/instructions, /graph, /kinds, /metrics).
With --publish, POST /publish forwards the tree to Redis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			env.cfg.HTTP.Addr, _ = cmd.Flags().GetString("addr")
		}

		metrics := observability.NewMetrics()
		opts := []autocopilot.Option{autocopilot.WithMetrics(metrics)}

		if publish, _ := cmd.Flags().GetBool("publish"); publish {
			pub := redisAdapter.New(env.cfg.Redis.Addr, redisAdapter.WithChannel(env.cfg.Redis.Channel))
			defer pub.Close()
			opts = append(opts, autocopilot.WithPublisher(pub))
		}

		cp, err := env.newCopilot(cmd, opts...)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr: env.cfg.HTTP.Addr,
			Handler: httpAdapter.NewHandler(cp,
				httpAdapter.WithLogger(env.logger),
				httpAdapter.WithMetricsHandler(metrics.Handler()),
			),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			env.logger.Info("starting copilot server", "addr", srv.Addr, "mission", env.mission)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case <-ctx.Done():
			stop()
			env.logger.Info("shutting down", "cause", context.Cause(ctx))

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				env.logger.Error("graceful shutdown did not complete", "error", err)
				return srv.Close()
			}
			env.logger.Info("copilot server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().Bool("publish", false, "Enable POST /publish through Redis")
}
