package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/cli/config"
	controller "github.com/secmon-lab/trackboard/pkg/controller/http"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/service/sheet"
	"github.com/secmon-lab/trackboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		gateCfg      config.Gate
		dashboardCfg config.Dashboard
		slackCfg     config.Slack
		firestoreCfg config.Firestore
	)

	flags := joinFlags(
		serverCfg.Flags(),
		gateCfg.Flags(),
		dashboardCfg.Flags(),
		slackCfg.Flags(),
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting trackboard server",
				slog.Any("server", serverCfg),
				slog.Any("gate", gateCfg),
				slog.Any("dashboard", dashboardCfg),
				slog.Any("slack", slackCfg),
				slog.Any("firestore", firestoreCfg),
			)

			layout, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}

			// Create session repository using config
			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Warn("Failed to close session repository", "error", err)
				}
			}()

			// Create use cases
			authUC, err := gateCfg.Configure(repo)
			if err != nil {
				return err
			}
			dashboardUC := usecase.NewDashboard(sheet.NewLoader(), layout)

			var reportUC interfaces.Report
			if slackClient := slackCfg.Configure(logger); slackClient != nil {
				r, err := usecase.NewReport(ctx, dashboardUC, slackClient, slackCfg.ChannelID)
				if err != nil {
					return err
				}
				reportUC = r
			}

			// Create HTTP server
			server, err := controller.NewServer(
				ctx,
				serverCfg.Addr,
				controller.NewUseCases(authUC, dashboardUC, reportUC),
				serverCfg.FrontendURL,
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting",
					slog.String("addr", serverCfg.Addr),
					slog.Int("sources", len(layout.Sources)),
				)
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
