package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"securenest/internal/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(_ *cobra.Command, _ []string) error {
		mg := migration.NewMigration(cfg, migration.DefaultEngine)
		if err := mg.Up(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info("migrations applied")
		return nil
	},
}
