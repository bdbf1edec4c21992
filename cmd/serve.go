package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingo/internal/app"
	"github.com/abhisek/lingo/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the practice API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe assembles the app and serves until SIGINT or SIGTERM.
func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Mode)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}
