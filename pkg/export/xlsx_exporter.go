package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// XLSXExporter renders datasets into a single-sheet workbook.
type XLSXExporter struct{}

// NewXLSXExporter constructs an XLSX exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// ContentType implements Renderer.
func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension implements Renderer.
func (e *XLSXExporter) Extension() string { return "xlsx" }

// Render writes headers on row 1 in bold followed by data rows.
func (e *XLSXExporter) Render(data Dataset) ([]byte, error) {
	if err := validate("xlsx", data); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	sheet := defaultSheet
	if data.Sheet != "" && data.Sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, data.Sheet); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
		sheet = data.Sheet
	}

	header := make([]any, len(data.Headers))
	for i, h := range data.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write xlsx headers: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(data.Headers))
	if err != nil {
		return nil, fmt.Errorf("resolve header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		return nil, fmt.Errorf("style xlsx headers: %w", err)
	}

	for r, row := range data.Rows {
		values := make([]any, len(data.Headers))
		for i := range data.Headers {
			values[i] = cell(row, i)
		}
		addr, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, fmt.Errorf("resolve row %d: %w", r, err)
		}
		if err := f.SetSheetRow(sheet, addr, &values); err != nil {
			return nil, fmt.Errorf("write xlsx row %d: %w", r, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
