package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RenderXLSX writes t as a single-sheet workbook. Amounts stay numeric.
func RenderXLSX(w io.Writer, sheet string, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}

	rowNum := 2
	for _, row := range t.Rows {
		if err := setRow(f, sheet, rowNum, row); err != nil {
			return err
		}
		rowNum++
	}
	if len(t.Footer) > 0 {
		if err := setRow(f, sheet, rowNum, t.Footer); err != nil {
			return err
		}
		if err := f.SetRowStyle(sheet, rowNum, rowNum, bold); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, rowNum int, row []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	values := append([]any(nil), row...)
	return f.SetSheetRow(sheet, cell, &values)
}
