package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"finance-api/models"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Type", "Date", "Category", "Amount", "Comment"}

// WriteCSV renders export rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []models.ExportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Type,
			r.Date.String(),
			r.Category,
			strconv.FormatFloat(r.Amount, 'f', -1, 64),
			r.Comment,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteExcel renders export rows as an xlsx workbook with a styled header
// row and auto-sized columns.
func WriteExcel(rows []models.ExportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Finances"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return nil, err
	}

	widths := make([]int, len(exportHeader))
	for i, h := range exportHeader {
		widths[i] = len(h)
	}

	for i, r := range rows {
		cells := []interface{}{r.Type, r.Date.String(), r.Category, r.Amount, r.Comment}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return nil, err
		}
		for j, cell := range cells {
			if n := len(fmt.Sprint(cell)); n > widths[j] {
				widths[j] = n
			}
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		width := float64(w + 2)
		if width > 50 {
			width = 50
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
