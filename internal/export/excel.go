package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"regportal/internal/domain/entities"
)

const sheetName = "Registrations"

// ToXLSX writes the registrations as a single-sheet workbook.
func ToXLSX(regs []entities.Registration, catalog entities.Catalog, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := setRow(f, 1, Headers); err != nil {
		return err
	}
	for i, reg := range regs {
		if err := setRow(f, i+2, row(reg, catalog)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return fmt.Errorf("set row %d: %w", rowNum, err)
	}
	return nil
}
