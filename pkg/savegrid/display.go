package savegrid

import (
	"fmt"

	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
)

// Display projects a grid for on-screen rendering: one badge and value per real
// cell, empty placeholders, and a total line spanning the full row width.
func Display(grid *models.Grid, opts Options) models.DisplayGrid {
	view := models.DisplayGrid{
		Title:       opts.Label("savings_grid"),
		ColumnCount: grid.ColumnCount,
		Rows:        make([][]models.DisplayCell, 0, len(grid.Rows)),
	}

	for _, row := range grid.Rows {
		cells := make([]models.DisplayCell, len(row))
		for i, c := range row {
			if c.IsPlaceholder() {
				cells[i] = models.DisplayCell{Placeholder: true}
				continue
			}
			cells[i] = models.DisplayCell{
				Badge: c.Label + ":",
				Value: opts.FormatNumber(*c.Value),
			}
		}
		view.Rows = append(view.Rows, cells)
	}

	view.TotalLine = fmt.Sprintf("%s: %s", opts.Label("total_value"), opts.FormatNumber(ComputeTotal(grid)))
	return view
}
