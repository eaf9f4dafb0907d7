// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	app "userservice/internal"
	"userservice/pkg/db"
)

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// serve runs the HTTP API until SIGINT or SIGTERM.
func serve(cctx *cli.Context) error {
	ctx, cancel := context.WithCancel(cctx.Context)
	defer cancel()

	// Create and initialize the application
	application := app.NewApplication()
	if err := application.Initialize(ctx); err != nil {
		application.Logger.Error("Failed to initialize application", "error", err)
		_ = application.Shutdown(ctx)
		return err
	}

	server := &http.Server{
		Addr:         ":" + application.Config.ServerPort,
		Handler:      application.HTTPHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Run server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		application.Logger.Info("Starting HTTP server", "port", application.Config.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		if err != nil {
			application.Logger.Error("HTTP server failed to start", "error", err)
			_ = application.Shutdown(ctx)
			return err
		}
	}

	application.Logger.Info("Shutting down HTTP server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error("HTTP server shutdown failed", "error", err)
		return err
	}

	// Perform application-level shutdown (e.g., close DB connections)
	if err := application.Shutdown(shutdownCtx); err != nil {
		return err
	}

	application.Logger.Info("Application gracefully stopped.")
	return nil
}

// withMigrator loads configuration and hands a Migrator to fn.
func withMigrator(fn func(application *app.Application, m *db.Migrator) error) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		application := app.NewApplication()
		if err := application.LoadConfig(); err != nil {
			return err
		}

		migrator, err := db.NewMigrator(application.Config.DB)
		if err != nil {
			return err
		}
		defer func() {
			if err := migrator.Close(); err != nil {
				application.Logger.Warn("Failed to close migrator", "error", err)
			}
		}()

		return fn(application, migrator)
	}
}

func migrateUp(application *app.Application, m *db.Migrator) error {
	if err := m.Up(); err != nil {
		return err
	}
	application.Logger.Info("Migrations applied.")
	return nil
}

func migrateDown(application *app.Application, m *db.Migrator) error {
	if err := m.Down(); err != nil {
		return err
	}
	application.Logger.Info("Migrations reverted.")
	return nil
}

func migrateVersion(application *app.Application, m *db.Migrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	application.Logger.Info("Current schema version", "version", version, "dirty", dirty)
	return nil
}
