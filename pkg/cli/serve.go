package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/issuepulse/issuepulse/pkg/cli/config"
	controller "github.com/issuepulse/issuepulse/pkg/controller/http"
	"github.com/issuepulse/issuepulse/pkg/service/jira"
	"github.com/issuepulse/issuepulse/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		classifyCfg config.Classify
	)

	flags := joinFlags(
		serverCfg.Flags(),
		classifyCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting issuepulse server",
				slog.String("addr", serverCfg.Addr),
			)

			classifier, err := classifyCfg.Configure()
			if err != nil {
				return err
			}

			// Credentials arrive with each request; the client holds no
			// session state of its own
			client := jira.New()

			authUC := usecase.NewAuth(client)
			dashboardUC := usecase.NewDashboard(client, usecase.WithClassifier(classifier))

			server, err := controller.NewServer(ctx, serverCfg.Addr, authUC, dashboardUC)
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
