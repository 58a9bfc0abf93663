package tabular

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "Sheet1"

// XLSXContentType is the MIME type served for XLSX downloads.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EncodeXLSX serializes the table as a single-sheet XLSX workbook.
func EncodeXLSX(t *Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	writeRow := func(rowNum int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(xlsxSheetName, cell, &row)
	}

	if err := writeRow(1, t.Headers); err != nil {
		return nil, fmt.Errorf("failed to write XLSX header: %w", err)
	}
	for i, row := range t.Rows {
		if err := writeRow(i+2, row); err != nil {
			return nil, fmt.Errorf("failed to write XLSX row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeXLSX parses the first sheet of an XLSX workbook into a table.
func DecodeXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrMissingHeader
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read XLSX rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}

	t := NewTable(rows[0])
	for _, row := range rows[1:] {
		t.Append(row)
	}
	return t, nil
}
