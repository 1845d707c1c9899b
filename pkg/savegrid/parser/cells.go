// Package parser reads exported savings workbooks back into structured data.
package parser

import (
	"strconv"

	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts raw cell data from a sheet.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]interface{})

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			// 1-based column index as string
			cellMap[strconv.Itoa(colIdx+1)] = parseValue(cellValue)
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowIdx + 1,
				C: cellMap,
			})
		}
	}

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// toFloat converts a parsed cell value to float64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
