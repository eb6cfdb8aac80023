package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"securenest/internal/app/server/api"
	"securenest/internal/infrastructure/storage/minio"
	"securenest/internal/infrastructure/storage/postgres"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(_ *cobra.Command, _ []string) error {
		storage, err := postgres.New(cfg)
		if err != nil {
			return fmt.Errorf("init storage: %w", err)
		}
		defer storage.Close()

		assets, err := minio.New(cfg, log)
		if err != nil {
			return fmt.Errorf("init object storage: %w", err)
		}

		mux, err := api.New(cfg, storage, assets, log)
		if err != nil {
			return fmt.Errorf("init api: %w", err)
		}

		srv := &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server starting", "address", cfg.Server.RunAddress, "env", cfg.Env)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server error: %w", err)
		case sig := <-stop:
			log.Info("shutting down", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		log.Info("server stopped")
		return nil
	},
}
