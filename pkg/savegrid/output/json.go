// Package output serializes grids and read-back sheets to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/savegrid-go/pkg/savegrid"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
)

// GridDocument is the JSON envelope of a generated grid.
type GridDocument struct {
	Input   models.SavingsInput `json:"input"`
	Grid    *models.Grid        `json:"grid"`
	Display models.DisplayGrid  `json:"display"`
	Total   float64             `json:"total"`
}

// NewGridDocument bundles both projections of a grid with its total.
func NewGridDocument(in models.SavingsInput, grid *models.Grid, opts savegrid.Options) GridDocument {
	return GridDocument{
		Input:   in,
		Grid:    grid,
		Display: savegrid.Display(grid, opts),
		Total:   savegrid.ComputeTotal(grid),
	}
}

// ToJSON serializes a grid document.
func ToJSON(doc GridDocument, pretty bool) ([]byte, error) {
	return marshal(doc, pretty)
}

// SheetToJSON serializes a sheet read back from a workbook.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
