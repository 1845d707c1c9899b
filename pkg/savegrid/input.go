package savegrid

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
)

const (
	// MinColumns is the narrowest grid a caller may request.
	MinColumns = 3
	// MaxColumns is the widest grid a caller may request.
	MaxColumns = 10
)

// ParsePeriodUnit converts a user-supplied unit name.
func ParsePeriodUnit(s string) (models.PeriodUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "days", "d":
		return models.Day, nil
	case "week", "weeks", "w":
		return models.Week, nil
	case "month", "months", "m":
		return models.Month, nil
	default:
		return "", NewInputError("period unit", fmt.Sprintf("%q is not one of day, week, month", s))
	}
}

// ValidateInput is the caller-side guard run before BuildGrid.
func ValidateInput(in models.SavingsInput) error {
	switch in.PeriodUnit {
	case models.Day, models.Week, models.Month:
	default:
		return NewInputError("period unit", fmt.Sprintf("%q is not one of day, week, month", in.PeriodUnit))
	}
	if in.PeriodCount < 0 {
		return NewInputError("period count", "must not be negative")
	}
	if in.ColumnCount < MinColumns || in.ColumnCount > MaxColumns {
		return NewInputError("column count", fmt.Sprintf("must be between %d and %d", MinColumns, MaxColumns))
	}
	if math.IsNaN(in.AmountPerPeriod) || math.IsInf(in.AmountPerPeriod, 0) {
		return NewInputError("amount per period", "must be a finite number")
	}
	if in.AmountPerPeriod < 0 {
		return NewInputError("amount per period", "must not be negative")
	}
	return nil
}
