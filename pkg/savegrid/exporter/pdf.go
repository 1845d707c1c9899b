package exporter

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/ukaji3/savegrid-go/pkg/savegrid"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
)

// PDF lays the grid out as a paginated document: each period is a filled label
// badge with its value beneath, followed by a total entry.
func (e *Exporter) PDF(grid *models.Grid, opts Options) (*models.Artifact, error) {
	if err := e.checkData(savegrid.FormatPDF, grid); err != nil {
		return nil, err
	}

	layout, err := layoutPDF(grid.RealCells(), savegrid.ComputeTotal(grid), grid.ColumnCount, opts)
	if err != nil {
		return nil, savegrid.NewExportError(savegrid.FormatPDF, fmt.Errorf("%w: %v", savegrid.ErrInvalidInput, err))
	}

	data, err := drawPDF(layout, opts.Label("savings_grid"))
	if err != nil {
		return nil, savegrid.NewExportError(savegrid.FormatPDF, err)
	}

	a := &models.Artifact{
		Filename: opts.filename(PDFFilename),
		MIMEType: PDFMIME,
		Data:     data,
	}
	e.logger.WithField("pages", layout.Pages).Debug("pdf laid out")
	e.logArtifact(savegrid.FormatPDF, grid, a)
	return a, nil
}

func drawPDF(l pdfLayout, title string) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: l.PageWidth, Ht: l.PageHeight},
	})
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, marginBottom)
	// Core fonts are cp1252; translate accented labels such as "Día".
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(title, true)
	pdf.SetCreator("savegrid", true)

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 51, 102)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(l.PageWidth-marginLeft-marginRight, titleHeight-2, tr(title), "", 0, "L", false, 0, "")

	page := 1
	for _, item := range l.Items {
		for page < item.Page {
			pdf.AddPage()
			page++
		}
		if item.Total {
			drawTotal(pdf, tr, item)
			continue
		}
		drawCell(pdf, tr, item)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawCell(pdf *fpdf.Fpdf, tr func(string) string, item placement) {
	const pad = 1.0
	w := item.W - 2*pad

	pdf.SetFillColor(13, 110, 253)
	pdf.RoundedRect(item.X+pad, item.Y, w, badgeHeight, 3, "1234", "F")
	pdf.SetFont("Arial", "B", 8)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(item.X+pad, item.Y)
	pdf.CellFormat(w, badgeHeight, tr(item.Badge), "", 0, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(50, 50, 50)
	pdf.SetXY(item.X+pad, item.Y+badgeHeight)
	pdf.CellFormat(w, valueHeight, tr(item.Value), "", 0, "C", false, 0, "")
}

func drawTotal(pdf *fpdf.Fpdf, tr func(string) string, item placement) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0, 51, 102)
	pdf.SetXY(item.X, item.Y)
	pdf.CellFormat(item.W, badgeHeight+valueHeight, tr(item.Badge+": "+item.Value), "1", 0, "L", true, 0, "")
}
