package exporter

import (
	"fmt"

	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
)

// PDF page geometry in millimetres.
const (
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0

	titleHeight  = 12.0
	badgeHeight  = 7.0
	valueHeight  = 7.0
	rowGap       = 4.0
	rowAdvance   = badgeHeight + valueHeight + rowGap
	minCellWidth = 10.0

	widthEpsilon = 1e-6
)

// placement is one positioned entry of the document.
type placement struct {
	Page  int
	X, Y  float64
	W     float64
	Badge string
	Value string
	Total bool
}

// pdfLayout is the fully positioned document, computed before drawing.
type pdfLayout struct {
	PageWidth  float64
	PageHeight float64
	CellWidth  float64
	Pages      int
	Items      []placement
}

// layoutPDF positions the real cells left to right, wrapping when the next cell
// would cross the usable width or the per-page column count is reached, and
// appends the total as its own full-width row.
func layoutPDF(cells []models.Cell, total float64, columns int, opts Options) (pdfLayout, error) {
	pageWidth, pageHeight := opts.PageWidth, opts.PageHeight
	if pageWidth <= 0 {
		pageWidth = A4Width
	}
	if pageHeight <= 0 {
		pageHeight = A4Height
	}
	perRow := opts.ColumnsPerPage
	if perRow <= 0 {
		perRow = columns
	}
	if perRow <= 0 {
		perRow = 1
	}

	usable := pageWidth - marginLeft - marginRight
	cellWidth := usable / float64(perRow)
	if cellWidth < minCellWidth {
		return pdfLayout{}, fmt.Errorf("page width %.1fmm is too narrow for %d columns", pageWidth, perRow)
	}
	if marginTop+titleHeight+badgeHeight+valueHeight > pageHeight-marginBottom {
		return pdfLayout{}, fmt.Errorf("page height %.1fmm is too short", pageHeight)
	}

	l := pdfLayout{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		CellWidth:  cellWidth,
		Pages:      1,
	}
	right := marginLeft + usable
	x, y := marginLeft, marginTop+titleHeight
	placed := 0

	newRow := func() {
		x = marginLeft
		y += rowAdvance
		placed = 0
		if y+badgeHeight+valueHeight > pageHeight-marginBottom {
			l.Pages++
			y = marginTop
		}
	}

	for _, c := range cells {
		if placed == perRow || x+cellWidth > right+widthEpsilon {
			newRow()
		}
		l.Items = append(l.Items, placement{
			Page:  l.Pages,
			X:     x,
			Y:     y,
			W:     cellWidth,
			Badge: c.Label,
			Value: opts.FormatNumber(*c.Value),
		})
		x += cellWidth
		placed++
	}

	newRow()
	l.Items = append(l.Items, placement{
		Page:  l.Pages,
		X:     marginLeft,
		Y:     y,
		W:     usable,
		Badge: opts.Label("total_value"),
		Value: opts.FormatNumber(total),
		Total: true,
	})

	return l, nil
}
