package parser

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidFormat indicates the input is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrUnexpectedLayout indicates the workbook does not follow the savings
// sheet layout (label/value row pairs followed by a total row).
var ErrUnexpectedLayout = errors.New("unexpected savings sheet layout")

// ReadSavingsSheet reads an exported savings workbook from r.
func ReadSavingsSheet(r io.Reader) (*models.SheetData, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()
	return Read(f)
}

// ReadSavingsFile reads an exported savings workbook from disk.
func ReadSavingsFile(path string) (*models.SheetData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()
	return Read(f)
}

// Read reconstructs the (label, value) pairs of the workbook's single sheet in
// row-major order, together with the total row.
func Read(f *excelize.File) (*models.SheetData, error) {
	sheets := f.GetSheetList()
	if len(sheets) != 1 {
		return nil, fmt.Errorf("%w: expected 1 sheet, found %d", ErrUnexpectedLayout, len(sheets))
	}
	name := sheets[0]

	rows, err := ExtractCells(f, name)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows)%2 == 0 {
		return nil, fmt.Errorf("%w: %d non-empty rows", ErrUnexpectedLayout, len(rows))
	}

	usedRange, err := DetectUsedRange(f, name)
	if err != nil {
		return nil, err
	}

	data := &models.SheetData{
		Name:       name,
		Rows:       rows,
		UsedRange:  usedRange,
		PrintAreas: ExtractPrintAreas(f)[name],
	}

	for i := 0; i+1 < len(rows); i += 2 {
		labels, values := rows[i], rows[i+1]
		if values.R != labels.R+1 {
			return nil, fmt.Errorf("%w: row %d has no value row beneath it", ErrUnexpectedLayout, labels.R)
		}
		for _, col := range sortedColumns(labels) {
			label, ok := labels.C[col].(string)
			if !ok {
				return nil, fmt.Errorf("%w: label at row %d column %s is not text", ErrUnexpectedLayout, labels.R, col)
			}
			value, ok := toFloat(values.C[col])
			if !ok {
				return nil, fmt.Errorf("%w: value at row %d column %s is not numeric", ErrUnexpectedLayout, values.R, col)
			}
			data.Pairs = append(data.Pairs, models.LabeledValue{Label: label, Value: value})
		}
	}

	totalRow := rows[len(rows)-1]
	totalLabel, ok := totalRow.C["1"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: total caption missing in row %d", ErrUnexpectedLayout, totalRow.R)
	}
	total, ok := toFloat(totalRow.C["2"])
	if !ok {
		return nil, fmt.Errorf("%w: total value missing in row %d", ErrUnexpectedLayout, totalRow.R)
	}
	data.TotalLabel = totalLabel
	data.Total = total

	return data, nil
}

// sortedColumns returns the row's column keys in numeric order.
func sortedColumns(row models.CellRow) []string {
	cols := make([]int, 0, len(row.C))
	for k := range row.C {
		if n, err := strconv.Atoi(k); err == nil {
			cols = append(cols, n)
		}
	}
	sort.Ints(cols)

	keys := make([]string, len(cols))
	for i, n := range cols {
		keys[i] = strconv.Itoa(n)
	}
	return keys
}
