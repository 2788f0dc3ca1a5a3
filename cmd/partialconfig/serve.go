package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/appetrosyan/partial-config/internal/config"
	"github.com/appetrosyan/partial-config/internal/handler"
	"github.com/appetrosyan/partial-config/internal/server"
	"github.com/appetrosyan/partial-config/internal/workers"
)

func newServeCommand(verbose *bool) *cobra.Command {
	var reloadInterval time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Publish the effective configuration over HTTP",
		Long: `serve listens on the configured address and answers GET /api/config with
the shareable part of the effective configuration, so another instance can
use it through --config-url. With --grpc-address a gRPC server exposing the
standard health service starts next to it. With --reload-interval every layer is read
again periodically; a failed reload keeps the previous configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := loadOptions(cmd, *verbose)

			cfg, err := config.Load(opts)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			reloader := workers.NewConfigReloader(cfg, func(ctx context.Context) (*config.ServerConfig, error) {
				reloadOpts := opts
				reloadOpts.Context = ctx
				return config.Load(reloadOpts)
			}, reloadInterval, opts.Logger)

			workers.NewWorkers(reloader).Run(cmd.Context())

			handlers, err := handler.NewHandlers(reloader, buildVersion, cfg, opts.Logger)
			if err != nil {
				return fmt.Errorf("failed to create handlers: %w", err)
			}

			srv, err := server.NewServer(handlers, cfg, opts.Logger)
			if err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "serving configuration at http://%s/api/config\n", srv.Addr())
			if addr := srv.GRPCAddr(); addr != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "serving gRPC health at %s\n", addr)
			}
			return srv.RunServer(cmd.Context())
		},
	}

	cmd.Flags().DurationVar(&reloadInterval, "reload-interval", 0, "Reload the configuration this often (0 disables reloading)")

	return cmd
}
