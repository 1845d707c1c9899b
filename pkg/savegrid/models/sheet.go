package models

// LabeledValue is one (label, value) pair recovered from an exported sheet.
type LabeledValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SheetData represents a savings sheet read back from a workbook.
type SheetData struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Rows contains the raw non-empty rows.
	Rows []CellRow `json:"rows,omitempty"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:G5").
	UsedRange string `json:"used_range,omitempty"`
	// PrintAreas contains the print areas defined for the sheet.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
	// Pairs holds the label/value pairs in row-major order.
	Pairs []LabeledValue `json:"pairs"`
	// TotalLabel is the caption of the summary row.
	TotalLabel string `json:"total_label"`
	// Total is the value of the summary row.
	Total float64 `json:"total"`
}
