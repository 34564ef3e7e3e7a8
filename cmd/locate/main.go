package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/quantmind-br/locate/internal/cmd"
	"github.com/quantmind-br/locate/internal/config"
	"github.com/quantmind-br/locate/internal/core"
	"github.com/quantmind-br/locate/internal/logging"
	"github.com/quantmind-br/locate/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return core.ExitInvalidArgs
	}

	ui.InitColors(cfg.Logging.Color)

	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Logging.File,
		NoColor: cfg.Logging.Color == "never",
	})

	rootCmd := cmd.NewRootCmd(cfg, log, version, cmd.DefaultRuntime())
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		log.Error().Err(err).Msg("command failed")
		return core.ExitInvalidArgs
	}
	return core.ExitSuccess
}
