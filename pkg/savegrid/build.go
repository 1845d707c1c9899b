package savegrid

import (
	"fmt"

	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
)

// BuildGrid computes the period-by-period savings sequence and arranges it
// row-major into rows of in.ColumnCount cells.
//
// Period i (1-based) saves i * in.AmountPerPeriod. Cells past PeriodCount in the
// last row are placeholders. A non-positive PeriodCount yields an empty grid and a
// ColumnCount below 1 is treated as 1; range checks belong to ValidateInput.
func BuildGrid(in models.SavingsInput, opts Options) *models.Grid {
	columns := in.ColumnCount
	if columns < 1 {
		columns = 1
	}
	periods := in.PeriodCount
	if periods < 0 {
		periods = 0
	}

	grid := &models.Grid{
		Unit:        in.PeriodUnit,
		ColumnCount: columns,
		PeriodCount: periods,
		Rows:        make([][]models.Cell, 0, rowCount(periods, columns)),
	}

	unitLabel := opts.Label(in.PeriodUnit.Key())
	period := 1
	for r := 0; r < rowCount(periods, columns); r++ {
		row := make([]models.Cell, columns)
		for c := 0; c < columns && period <= periods; c++ {
			value := float64(period) * in.AmountPerPeriod
			row[c] = models.Cell{
				Index: period,
				Label: fmt.Sprintf("%s %d", unitLabel, period),
				Value: &value,
			}
			period++
		}
		grid.Rows = append(grid.Rows, row)
	}

	return grid
}

// ComputeTotal returns the sum of all real cell values.
func ComputeTotal(grid *models.Grid) float64 {
	total := 0.0
	for _, c := range grid.RealCells() {
		total += *c.Value
	}
	return total
}

// rowCount returns ceil(periods / columns).
func rowCount(periods, columns int) int {
	if periods <= 0 {
		return 0
	}
	return (periods + columns - 1) / columns
}
