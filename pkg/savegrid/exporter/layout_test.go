package exporter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/savegrid-go/pkg/savegrid"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
)

func gridCells(periods, columns int) ([]models.Cell, float64) {
	grid := savegrid.BuildGrid(models.SavingsInput{
		PeriodUnit:      models.Day,
		PeriodCount:     periods,
		AmountPerPeriod: 5,
		ColumnCount:     columns,
	}, savegrid.DefaultOptions())
	return grid.RealCells(), savegrid.ComputeTotal(grid)
}

func TestLayoutPDF_WrapsAtColumnCount(t *testing.T) {
	cells, total := gridCells(10, 7)

	l, err := layoutPDF(cells, total, 7, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, l.Items, 11)

	usable := A4Width - marginLeft - marginRight
	assert.InDelta(t, usable/7, l.CellWidth, 1e-9)
	assert.Equal(t, 1, l.Pages)

	first := l.Items[0]
	assert.Equal(t, marginLeft, first.X)
	for i := 1; i < 7; i++ {
		assert.Equal(t, first.Y, l.Items[i].Y)
		assert.InDelta(t, first.X+float64(i)*l.CellWidth, l.Items[i].X, 1e-9)
	}

	eighth := l.Items[7]
	assert.Equal(t, "Day 8", eighth.Badge)
	assert.Equal(t, marginLeft, eighth.X)
	assert.Equal(t, first.Y+rowAdvance, eighth.Y)

	totalItem := l.Items[10]
	assert.True(t, totalItem.Total)
	assert.Equal(t, "Total Value", totalItem.Badge)
	assert.Equal(t, "275", totalItem.Value)
	assert.Equal(t, eighth.Y+rowAdvance, totalItem.Y)
	assert.InDelta(t, usable, totalItem.W, 1e-9)
}

func TestLayoutPDF_ColumnsPerPageOverride(t *testing.T) {
	cells, total := gridCells(12, 7)
	opts := DefaultOptions()
	opts.ColumnsPerPage = 5

	l, err := layoutPDF(cells, total, 7, opts)
	require.NoError(t, err)

	rows := map[float64]int{}
	for _, item := range l.Items {
		if !item.Total {
			rows[item.Y]++
		}
	}
	assert.Len(t, rows, 3)
	for _, n := range rows {
		assert.LessOrEqual(t, n, 5)
	}
	assert.Equal(t, "Day 6", l.Items[5].Badge)
	assert.Equal(t, marginLeft, l.Items[5].X)
}

func TestLayoutPDF_Paginates(t *testing.T) {
	cells, total := gridCells(365, 7)

	l, err := layoutPDF(cells, total, 7, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, l.Items, 366)
	assert.Greater(t, l.Pages, 1)

	prevPage := 1
	for i, item := range l.Items {
		assert.GreaterOrEqual(t, item.Page, prevPage, "item %d goes back a page", i)
		assert.GreaterOrEqual(t, item.Y, marginTop)
		assert.LessOrEqual(t, item.Y+badgeHeight+valueHeight, l.PageHeight-marginBottom+1e-9, "item %d overflows page", i)
		assert.LessOrEqual(t, item.X+item.W, l.PageWidth-marginRight+1e-9, "item %d overflows width", i)
		prevPage = item.Page
	}
	assert.Equal(t, l.Pages, l.Items[len(l.Items)-1].Page)
	assert.True(t, l.Items[len(l.Items)-1].Total)
}

func TestLayoutPDF_CustomPageSize(t *testing.T) {
	cells, total := gridCells(9, 3)
	opts := DefaultOptions()
	opts.PageWidth, opts.PageHeight = LetterWidth, LetterHeight

	l, err := layoutPDF(cells, total, 3, opts)
	require.NoError(t, err)
	assert.InDelta(t, (LetterWidth-marginLeft-marginRight)/3, l.CellWidth, 1e-9)
	assert.Equal(t, LetterHeight, l.PageHeight)
}

func TestLayoutPDF_Rejects(t *testing.T) {
	cells, total := gridCells(3, 3)

	opts := DefaultOptions()
	opts.PageWidth = 40
	_, err := layoutPDF(cells, total, 3, opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.PageHeight = 50
	_, err = layoutPDF(cells, total, 3, opts)
	assert.Error(t, err)
}

func TestPageSize(t *testing.T) {
	w, h, err := PageSize("Letter")
	require.NoError(t, err)
	assert.Equal(t, LetterWidth, w)
	assert.Equal(t, LetterHeight, h)

	w, h, err = PageSize("")
	require.NoError(t, err)
	assert.Equal(t, A4Width, w)
	assert.Equal(t, A4Height, h)

	_, _, err = PageSize("tabloid")
	assert.Error(t, err)
}

func TestPointsToMM(t *testing.T) {
	assert.InDelta(t, 25.4, PointsToMM(72), 1e-9)
	assert.True(t, math.Abs(PointsToMM(595.28)-A4Width) < 0.01)
}
