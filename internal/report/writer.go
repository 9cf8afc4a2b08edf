package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"invoicesheet/internal/extract"
)

// SheetName is the single worksheet every workbook carries.
const SheetName = "Invoices"

// WriteWorkbook renders an extracted table as an xlsx workbook. An empty
// table still produces a valid workbook, listing one placeholder row per
// failed document so the caller always gets a downloadable result.
func WriteWorkbook(t extract.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	if t.Empty() {
		if err := writeSheet(f, headerCells(extract.PlaceholderColumns), placeholderRows(t)); err != nil {
			return nil, err
		}
	} else {
		if err := writeSheet(f, headerCells(extract.Columns), dataRows(t)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func headerCells(columns []string) []any {
	cells := make([]any, len(columns))
	for i, c := range columns {
		cells[i] = c
	}
	return cells
}

func dataRows(t extract.Table) [][]any {
	rows := make([][]any, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, r.Cells())
	}
	return rows
}

func placeholderRows(t extract.Table) [][]any {
	rows := make([][]any, 0, len(t.Placeholders))
	for _, p := range t.Placeholders {
		rows = append(rows, p.Cells())
	}
	return rows
}

func writeSheet(f *excelize.File, header []any, rows [][]any) error {
	if err := setRow(f, 1, header); err != nil {
		return err
	}
	for i, cells := range rows {
		if err := setRow(f, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("locating row %d: %w", row, err)
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}
