package main

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/jogos-org/jogos/api/v1"
	"github.com/jogos-org/jogos/internal/config"
	"github.com/jogos-org/jogos/internal/handlers"
	"github.com/jogos-org/jogos/internal/server"
)

func newServeCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over a local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return withApp(ctx, cfg, func(a *app) error {
				log := zap.S().Named("serve")

				if err := a.prefs.Watch(ctx, func() {
					log.Infow("preferences changed on disk", "path", a.prefs.Path())
				}); err != nil {
					log.Warnw("failed to watch preferences", "error", err)
				}

				if _, err := a.catalog.Open(ctx); err != nil {
					return err
				}

				srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
					v1.RegisterHandlers(router, handlers.New(a.catalog, a.metadata, a.covers, a.prefs))
				})
				if err != nil {
					return err
				}
				return srv.Start(ctx)
			})
		},
	}

	cmd.Flags().StringVar(&cfg.Server.Mode, "server-mode", cfg.Server.Mode, "server mode: dev or prod")
	cmd.Flags().IntVar(&cfg.Server.HTTPPort, "http-port", cfg.Server.HTTPPort, "HTTP listen port")
	return cmd
}

