package cmd

import (
	"github.com/spf13/cobra"

	"regportal/internal/config"
	"regportal/internal/infrastructure/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
	},
}
