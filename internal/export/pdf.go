package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"regportal/internal/domain/entities"
)

// Column widths in mm, tuned for A4 landscape.
var pdfWidths = []float64{42, 26, 26, 24, 10, 20, 22, 22, 22, 24, 20, 0, 22}

// ToPDF writes the registrations as a landscape table with a generated-on
// header, paginating as needed. The uploaded-file column is dropped; paths
// are meaningless on paper.
func ToPDF(regs []entities.Registration, catalog entities.Catalog, w io.Writer) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Event Registration Dashboard")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated on: %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total Records: %d", len(regs)))
	pdf.Ln(10)

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range Headers {
			if pdfWidths[i] == 0 {
				continue
			}
			pdf.CellFormat(pdfWidths[i], 6, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	writeHeader()

	pdf.SetFont("Helvetica", "", 7)
	for _, reg := range regs {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			writeHeader()
			pdf.SetFont("Helvetica", "", 7)
		}
		for i, v := range row(reg, catalog) {
			if pdfWidths[i] == 0 {
				continue
			}
			pdf.CellFormat(pdfWidths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
