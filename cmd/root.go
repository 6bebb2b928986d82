package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "regportal",
	Short: "Capacity-gated event registration service",
	Long: `regportal serves the event registration API: form intake with
per-category capacity ceilings and duplicate-email rejection, the admin
table with xlsx/PDF exports, and post-commit email notification.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(exportCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
