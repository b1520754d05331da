package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"fleetgateway/internal/app/server"
	"fleetgateway/internal/app/server/api"
	"fleetgateway/internal/config"
	"fleetgateway/internal/infrastructure/upstream"
	"fleetgateway/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

func newServeCmd(cfgFile *string) *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gateway",
		Long: `Run the HTTP gateway. Configuration comes from the environment, an
optional .env file and the --config file; --addr overrides RUN_ADDRESS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.Server.RunAddress = addr
			}

			log := logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)
			log.Info("starting fleetgateway",
				slog.String("env", cfg.Env),
				slog.String("version", version),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mux := api.New(upstream.New(cfg.Upstream, log), log)
			return server.New(cfg.Server, mux, log).Run(ctx)
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address, host:port")
	return serveCmd
}
