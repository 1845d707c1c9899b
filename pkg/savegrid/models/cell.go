// Package models defines data structures for savings grids and their exports.
package models

// Cell is one slot of a savings grid.
type Cell struct {
	// Index is the 1-based period number (0 for placeholders).
	Index int `json:"index,omitempty"`
	// Label is the period label, e.g. "Day 3" (empty for placeholders).
	Label string `json:"label,omitempty"`
	// Value is the amount saved in this period (nil for placeholders).
	Value *float64 `json:"value"`
}

// IsPlaceholder reports whether the cell only pads the final row.
func (c Cell) IsPlaceholder() bool {
	return c.Value == nil
}

// CellRow represents a single non-empty worksheet row read back from a workbook.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string, 1-based) to cell value.
	C map[string]interface{} `json:"c"`
}
