package models

import "strings"

// PeriodUnit is the label basis for one period.
type PeriodUnit string

const (
	Day   PeriodUnit = "day"
	Week  PeriodUnit = "week"
	Month PeriodUnit = "month"
)

// Key returns the localization key of the unit.
func (u PeriodUnit) Key() string {
	return strings.ToLower(string(u))
}

// SavingsInput holds the four primitives supplied by the caller.
type SavingsInput struct {
	// PeriodUnit selects days, weeks or months.
	PeriodUnit PeriodUnit `json:"period_unit" yaml:"period_unit"`
	// PeriodCount is the number of periods to project.
	PeriodCount int `json:"period_count" yaml:"period_count"`
	// AmountPerPeriod is the savings increment per period.
	AmountPerPeriod float64 `json:"amount_per_period" yaml:"amount_per_period"`
	// ColumnCount is the number of cells per grid row.
	ColumnCount int `json:"column_count" yaml:"column_count"`
}

// Grid is the row-major arrangement of periods.
// Every row holds exactly ColumnCount cells; the last row is padded with placeholders.
type Grid struct {
	// Unit is the period unit the grid was built for.
	Unit PeriodUnit `json:"unit"`
	// ColumnCount is the fixed row width.
	ColumnCount int `json:"column_count"`
	// PeriodCount is the number of real (non-placeholder) cells.
	PeriodCount int `json:"period_count"`
	// Rows contains the grid rows, top to bottom.
	Rows [][]Cell `json:"rows"`
}

// IsEmpty reports whether the grid contains no real cells.
func (g *Grid) IsEmpty() bool {
	if g == nil {
		return true
	}
	for _, row := range g.Rows {
		for _, c := range row {
			if !c.IsPlaceholder() {
				return false
			}
		}
	}
	return true
}

// RealCells returns the non-placeholder cells in row-major order.
func (g *Grid) RealCells() []Cell {
	if g == nil {
		return nil
	}
	var cells []Cell
	for _, row := range g.Rows {
		for _, c := range row {
			if !c.IsPlaceholder() {
				cells = append(cells, c)
			}
		}
	}
	return cells
}
