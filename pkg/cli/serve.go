package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/combine/pkg/cli/config"
	controller "github.com/m-mizutani/combine/pkg/controller/http"
	"github.com/m-mizutani/combine/pkg/usecase"
	"github.com/m-mizutani/combine/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		assetCfg   config.Asset
		storageCfg config.Storage
		sentryCfg  config.Sentry
	)

	flags := append(serverCfg.Flags(), assetCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			mimeTable, err := assetCfg.MIMETable()
			if err != nil {
				return err
			}

			root, err := assetCfg.AbsRoot(storageCfg.IsRemote())
			if err != nil {
				return err
			}

			source, closeSource, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closeSource()

			logger.Info("Starting combine server",
				slog.String("addr", serverCfg.Addr),
				slog.String("root", root),
				slog.String("source", source.Name()),
				slog.Int("mime_types", mimeTable.Len()),
				slog.Any("storage", storageCfg),
				slog.Any("sentry", sentryCfg),
			)

			// Create use cases
			comboUC := usecase.NewCombo(root, source, usecase.WithMIMETable(mimeTable))

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				comboUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithHealthPath(serverCfg.HealthPath),
				controller.WithSourceName(source.Name()),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
