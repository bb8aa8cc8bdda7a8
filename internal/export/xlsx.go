package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

const sheetName = "Report"

// XLSX renders the report as a single-sheet workbook with a bold header row.
func XLSX(rep *domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx header style: %w", err)
	}

	if err := writeRow(f, 1, headerLabels(rep)); err != nil {
		return nil, err
	}
	for i, row := range rep.Rows {
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	if n := len(rep.Columns); n > 0 {
		last, err := excelize.ColumnNumberToName(n)
		if err != nil {
			return nil, fmt.Errorf("xlsx column name: %w", err)
		}
		if err := f.SetCellStyle(sheetName, "A1", last+"1", header); err != nil {
			return nil, fmt.Errorf("xlsx apply header style: %w", err)
		}
		if err := f.SetColWidth(sheetName, "A", last, 20); err != nil {
			return nil, fmt.Errorf("xlsx column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("xlsx cell name: %w", err)
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
		return fmt.Errorf("xlsx row %d: %w", rowNum, err)
	}
	return nil
}
