package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/felixgeelhaar/fitsmart/adapter/cli/account"
	"github.com/felixgeelhaar/fitsmart/adapter/cli/billing"
	"github.com/felixgeelhaar/fitsmart/adapter/cli/meal"
	"github.com/felixgeelhaar/fitsmart/adapter/cli/quiz"
	"github.com/felixgeelhaar/fitsmart/adapter/cli/water"
	"github.com/felixgeelhaar/fitsmart/adapter/cli/workout"
	"github.com/felixgeelhaar/fitsmart/internal/app"
	"github.com/felixgeelhaar/fitsmart/pkg/config"
	"github.com/felixgeelhaar/fitsmart/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()
	cli.SetLogger(logger)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if !cfg.IsDevelopment() {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
		// Commands report ErrNotInitialized; version and help still work.
		logger.Warn("failed to initialize container, running in limited mode", "error", err)
	} else {
		defer container.Close()
		cli.SetApp(cli.NewApp(container))
	}

	cli.AddCommand(account.Cmd)
	cli.AddCommand(quiz.Cmd)
	cli.AddCommand(billing.Cmd)
	cli.AddCommand(workout.Cmd)
	cli.AddCommand(meal.Cmd)
	cli.AddCommand(water.Cmd)

	cli.Execute(ctx)
}
