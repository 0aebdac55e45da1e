package reports

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

const ContentTypePDF = "application/pdf"

// RenderPDF writes t as a landscape A4 table.
func RenderPDF(w io.Writer, t Table) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(t.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(t.Title))
	pdf.Ln(10)
	if t.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, tr(t.Subtitle))
		pdf.Ln(8)
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(max(len(t.Columns), 1))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range t.Columns {
		pdf.CellFormat(colWidth, 7, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range t.Rows {
		writeRow(pdf, tr, colWidth, row, len(t.Columns))
	}
	if len(t.Footer) > 0 {
		pdf.SetFont("Helvetica", "B", 9)
		writeRow(pdf, tr, colWidth, t.Footer, len(t.Columns))
	}
	return pdf.Output(w)
}

func writeRow(pdf *gofpdf.Fpdf, tr func(string) string, width float64, row []any, columns int) {
	for i := 0; i < columns; i++ {
		var cell any
		if i < len(row) {
			cell = row[i]
		}
		align := "L"
		if _, ok := cell.(float64); ok {
			align = "R"
		}
		pdf.CellFormat(width, 6, tr(cellText(cell)), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}
