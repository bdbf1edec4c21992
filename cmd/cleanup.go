package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingo/internal/app"
	"github.com/abhisek/lingo/internal/logging"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Sweep stale practice sessions once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// The sweep needs no provider; the mock keeps startup key-free.
		cfg.LLM.Provider = "mock"

		log, err := logging.New(cfg.Mode)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer log.Sync()

		a, err := app.New(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.Cleanup(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("removed %d stale sessions\n", n)
		return nil
	},
}
