package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/savegrid-go/pkg/savegrid"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
)

const spreadsheetColWidth = 14

// Spreadsheet writes the grid as a single-sheet workbook. Each grid row becomes
// a label row followed by a value row in the same columns; a final row holds
// the total caption in column A and the total in column B.
func (e *Exporter) Spreadsheet(grid *models.Grid, opts Options) (*models.Artifact, error) {
	if err := e.checkData(savegrid.FormatSpreadsheet, grid); err != nil {
		return nil, err
	}

	data, err := writeWorkbook(grid, opts)
	if err != nil {
		return nil, savegrid.NewExportError(savegrid.FormatSpreadsheet, err)
	}

	a := &models.Artifact{
		Filename: opts.filename(SpreadsheetFilename),
		MIMEType: SpreadsheetMIME,
		Data:     data,
	}
	e.logArtifact(savegrid.FormatSpreadsheet, grid, a)
	return a, nil
}

func writeWorkbook(grid *models.Grid, opts Options) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := opts.Label("sheet_name")
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"0D6EFD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating label style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating total style: %w", err)
	}

	for r, row := range grid.Rows {
		labelRow := 2*r + 1
		for c, cell := range row {
			if cell.IsPlaceholder() {
				continue
			}
			labelRef, _ := excelize.CoordinatesToCellName(c+1, labelRow)
			valueRef, _ := excelize.CoordinatesToCellName(c+1, labelRow+1)
			if err := f.SetCellStr(sheet, labelRef, cell.Label); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheet, labelRef, labelRef, labelStyle); err != nil {
				return nil, err
			}
			if err := f.SetCellFloat(sheet, valueRef, *cell.Value, -1, 64); err != nil {
				return nil, err
			}
		}
	}

	totalRow := 2*len(grid.Rows) + 1
	totalLabelRef, _ := excelize.CoordinatesToCellName(1, totalRow)
	totalValueRef, _ := excelize.CoordinatesToCellName(2, totalRow)
	if err := f.SetCellStr(sheet, totalLabelRef, opts.Label("total_value")); err != nil {
		return nil, err
	}
	if err := f.SetCellFloat(sheet, totalValueRef, savegrid.ComputeTotal(grid), -1, 64); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, totalLabelRef, totalValueRef, totalStyle); err != nil {
		return nil, err
	}

	lastCol := max(grid.ColumnCount, 2)
	lastColName, _ := excelize.ColumnNumberToName(lastCol)
	if err := f.SetColWidth(sheet, "A", lastColName, spreadsheetColWidth); err != nil {
		return nil, err
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("'%s'!$A$1:$%s$%d", sheet, lastColName, totalRow),
		Scope:    sheet,
	}); err != nil {
		return nil, fmt.Errorf("setting print area: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
