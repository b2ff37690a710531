package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reflect-lab/stella/pkg/cli/config"
	server "github.com/reflect-lab/stella/pkg/controller/http"
	"github.com/reflect-lab/stella/pkg/usecase"
	"github.com/reflect-lab/stella/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		addr       string
		sentryCfg  config.Sentry
		repoCfg    config.Repository
		storageCfg config.Storage
		weightsCfg config.Weights
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("STELLA_ADDR"),
				Usage:       "Listen address (default: 127.0.0.1:8080)",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
		},
		sentryCfg.Flags(),
		repoCfg.Flags(),
		storageCfg.Flags(),
		weightsCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the journal HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Default().Info("starting server",
				"addr", addr,
				"sentry", sentryCfg,
				"repository", repoCfg,
				"storage", storageCfg,
				"weights", weightsCfg,
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			repo, repoCloser, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repoCloser()

			weights, err := weightsCfg.Configure()
			if err != nil {
				return err
			}

			ucOptions := []usecase.Option{
				usecase.WithRepository(repo),
				usecase.WithDefaultWeights(weights),
			}

			// Backup stays disabled unless a bucket is given. The export
			// endpoint reports it as unavailable in that case.
			if storageCfg.IsConfigured() {
				storageClient, err := storageCfg.Configure(ctx)
				if err != nil {
					return err
				}
				defer storageClient.Close(ctx)

				ucOptions = append(ucOptions,
					usecase.WithStorageClient(storageClient),
					usecase.WithStoragePrefix(storageCfg.Prefix()),
				)
			}

			uc := usecase.New(ucOptions...)

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(uc),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.From(ctx).Info("shutting down", "signal", sig.String())

				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(ctx)
			}
		},
	}
}
