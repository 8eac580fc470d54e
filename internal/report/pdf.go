package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders the report as a one-column A4 document
func WritePDF(w io.Writer, r Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bikeshare report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "US Bikeshare Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, Heading(r.Selection))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Trips: %d", r.TripCount))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generated: "+r.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.Ln(7)
	if line := SkippedLine(r.Skipped); line != "" {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	for _, section := range r.Sections() {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, section.Title)
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "", 11)
		for _, line := range section.Lines {
			pdf.MultiCell(0, 6, line, "", "", false)
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}
