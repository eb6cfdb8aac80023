package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"securenest/internal/app/server/config"
	"securenest/internal/utils/logger"
)

var (
	envFile string
	cfg     *config.Config
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "securenest",
	Short: "SecureNest personal vault server",
	Long: `SecureNest is a personal vault for credentials, notes and documents.
Sensitive fields are encrypted at rest, binary assets live in object
storage, and signup is gated by email verification codes.`,
	PersistentPreRun: setup,
	SilenceUsage:     true,
	SilenceErrors:    true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) {
	cfg = config.MustLoad(envFile)
	log = logger.New(cfg.Env)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to the .env file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
