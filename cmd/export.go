package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"regportal/internal/config"
	"regportal/internal/export"
	"regportal/internal/infrastructure/database"
)

var (
	exportFormat string
	exportEvent  string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export registrations to a spreadsheet or PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runExport(cmd.Context(), cfg)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "xlsx", "output format: xlsx or pdf")
	exportCmd.Flags().StringVarP(&exportEvent, "event", "e", "", "restrict to one event")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (required)")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(ctx context.Context, cfg *config.Config) error {
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	regs, err := database.NewRegistrationRepository(pool).List(ctx)
	if err != nil {
		return err
	}
	if exportEvent != "" {
		filtered := regs[:0]
		for _, reg := range regs {
			if reg.EventName == exportEvent {
				filtered = append(filtered, reg)
			}
		}
		regs = filtered
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return err
	}
	defer f.Close()

	switch exportFormat {
	case "xlsx":
		err = export.ToXLSX(regs, catalog, f)
	case "pdf":
		err = export.ToPDF(regs, catalog, f)
	default:
		return fmt.Errorf("unknown format %q (want xlsx or pdf)", exportFormat)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d registrations to %s\n", len(regs), exportOut)
	return nil
}
