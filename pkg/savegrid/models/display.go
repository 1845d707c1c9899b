package models

// DisplayCell is a cell prepared for on-screen rendering.
type DisplayCell struct {
	// Badge is the label shown in the pill above the value, e.g. "Day 3:".
	Badge string `json:"badge,omitempty"`
	// Value is the formatted amount.
	Value string `json:"value,omitempty"`
	// Placeholder marks padding cells that render empty.
	Placeholder bool `json:"placeholder,omitempty"`
}

// DisplayGrid is the display-oriented projection of a Grid.
type DisplayGrid struct {
	// Title is the caption shown above the grid.
	Title string `json:"title"`
	// ColumnCount is the number of cells per row.
	ColumnCount int `json:"column_count"`
	// Rows contains the display rows.
	Rows [][]DisplayCell `json:"rows"`
	// TotalLine is the final row spanning all columns, e.g. "Total Value: 275".
	TotalLine string `json:"total_line"`
}
