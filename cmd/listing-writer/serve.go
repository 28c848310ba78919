package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joestump/listing-writer/internal/api"
	"github.com/joestump/listing-writer/internal/build"
	"github.com/joestump/listing-writer/internal/config"
	"github.com/joestump/listing-writer/internal/llm"
	"github.com/joestump/listing-writer/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			gen, err := llm.New(cfg)
			if err != nil {
				return err
			}
			if cfg.UsesOpenAI() && cfg.LLM.APIKey == "" {
				logger.Warn("PROVIDER=openai but OPENAI_API_KEY is empty; /generate will fail until it is set")
			}

			router := api.NewRouter(api.Deps{
				Generator:    gen,
				Logger:       logger,
				AllowOrigins: cfg.CORS.AllowOrigins,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening",
					zap.String("addr", cfg.HTTP.Addr),
					zap.String("provider", gen.Name()),
					zap.Strings("cors_origins", cfg.CORS.AllowOrigins),
					zap.String("version", build.Version),
				)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
