package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DetectUsedRange returns the bounding range of non-empty cells
// (e.g. "A1:G5"), or "" for an empty sheet.
func DetectUsedRange(f *excelize.File, sheetName string) (string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return "", nil
	}

	// Convert to Excel range notation
	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// findDataBounds finds the 0-based bounding box of non-empty cells.
// All four bounds are -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow, minCol, maxCol = -1, -1, -1, -1

	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = r
			}
			maxRow = r
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}

	return
}
