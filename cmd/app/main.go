package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(configs.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := run(ctx, app, configs.HTTPPort, logger); err != nil {
		logger.Error("shutdown with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) (err error) {
	defer func() {
		err = errors.Join(err, app.Close())
	}()

	listener, err := app.CreateNotificationListener()
	if err != nil {
		return err
	}
	listenerDone := make(chan struct{})
	go func() {
		defer close(listenerDone)
		if err := listener.Run(ctx); err != nil {
			logger.Error("notification listener stopped", "error", err)
		}
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", "port", port)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-listenerDone
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
