// Package exporter serializes savings grids into downloadable documents.
package exporter

import (
	"github.com/sirupsen/logrus"

	"github.com/ukaji3/savegrid-go/pkg/savegrid"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
)

const (
	// SpreadsheetFilename is the default name of the workbook artifact.
	SpreadsheetFilename = "savings_data.xlsx"
	// PDFFilename is the default name of the paginated document artifact.
	PDFFilename = "savings_data.pdf"

	// SpreadsheetMIME is the content type of .xlsx files.
	SpreadsheetMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// PDFMIME is the content type of PDF files.
	PDFMIME = "application/pdf"
)

// Options configures an export.
type Options struct {
	savegrid.Options
	// Filename overrides the default artifact name.
	Filename string
	// PageWidth is the PDF page width in millimetres (default A4).
	PageWidth float64
	// PageHeight is the PDF page height in millimetres (default A4).
	PageHeight float64
	// ColumnsPerPage caps the cells per PDF row (default: the grid's column count).
	ColumnsPerPage int
}

// DefaultOptions returns English labels, default filenames and an A4 page.
func DefaultOptions() Options {
	return Options{
		Options:    savegrid.DefaultOptions(),
		PageWidth:  A4Width,
		PageHeight: A4Height,
	}
}

func (o Options) filename(fallback string) string {
	if o.Filename != "" {
		return o.Filename
	}
	return fallback
}

// Exporter produces export artifacts. It holds no state between calls.
type Exporter struct {
	logger *logrus.Logger
}

// New creates an Exporter. A nil logger uses the logrus standard logger.
func New(logger *logrus.Logger) *Exporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Exporter{logger: logger}
}

// Export dispatches to the exporter for format.
func (e *Exporter) Export(format savegrid.Format, grid *models.Grid, opts Options) (*models.Artifact, error) {
	switch format {
	case savegrid.FormatSpreadsheet:
		return e.Spreadsheet(grid, opts)
	case savegrid.FormatPDF:
		return e.PDF(grid, opts)
	default:
		return nil, savegrid.NewExportError(format, savegrid.ErrUnsupportedFormat)
	}
}

// checkData declines empty grids before any document is started.
func (e *Exporter) checkData(format savegrid.Format, grid *models.Grid) error {
	if grid.IsEmpty() {
		e.logger.WithField("format", format).Warn("grid has no periods, export declined")
		return savegrid.NewExportError(format, savegrid.ErrEmptyData)
	}
	return nil
}

func (e *Exporter) logArtifact(format savegrid.Format, grid *models.Grid, a *models.Artifact) {
	e.logger.WithFields(logrus.Fields{
		"format":   format,
		"filename": a.Filename,
		"bytes":    a.Size(),
		"periods":  grid.PeriodCount,
		"columns":  grid.ColumnCount,
	}).Debug("export complete")
}
