package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repocache/pkg/controller/server"
	"github.com/m-mizutani/repocache/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string
		cfg  pipelineConfig
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("REPOCACHE_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode. Jobs are triggered by POST /jobs/sync/{job} and /jobs/export/{job}",
		Flags:   slice.Flatten(serveFlags, cfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", cfg.github),
				slog.Any("SecretManager", cfg.secretManager),
				slog.Any("Storage", cfg.storage),
				slog.Any("Sentry", &cfg.sentry),
			)

			uc, closer, err := cfg.buildUseCase(ctx)
			if err != nil {
				return err
			}
			defer closer()

			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				shutdownErr := httpServer.Shutdown(ctx)

				// Jobs still use clients released by closer
				if err := s.Wait(ctx); err != nil {
					return goerr.Wrap(err, "running jobs did not finish before shutdown timeout")
				}
				if shutdownErr != nil {
					return goerr.Wrap(shutdownErr, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
