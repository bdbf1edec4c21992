package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/lingo/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "lingo",
	Short: "Adaptive language practice service",
	Long:  "Lingo serves adaptive practice sessions: an IRT-scored question pool, LLM generation and grading, and per-learner ability tracking.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is fine; the environment may already be set.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "lingo.yaml", "Path to the YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, with LINGO_
// environment variables overriding it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
