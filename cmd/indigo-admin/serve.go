package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/indigo-rhapsody/indigo-admin/internal/config"
	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
	"github.com/indigo-rhapsody/indigo-admin/internal/router"
	"github.com/indigo-rhapsody/indigo-admin/internal/setup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin console",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFolder)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

		env, err := cfg.ResolveEnvironment(lookup)
		if err != nil {
			return fmt.Errorf("resolve environment: %w", err)
		}

		deps, err := setup.SetupDependencies(cfg, env)
		if err != nil {
			return fmt.Errorf("setup: %w", err)
		}
		defer deps.CancelFunc()

		server := &http.Server{
			Addr:         cfg.Public.Addr,
			Handler:      router.SetupRouter(deps),
			ReadTimeout:  cfg.Public.ReadTimeout,
			WriteTimeout: cfg.Public.WriteTimeout,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Log.Info("starting admin console", "addr", server.Addr, "env", env.Name, "api", env.APIBaseURL, "debug", env.Debug)
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Log.Info("shutting down admin console")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}
