// Package savegrid builds savings projection grids.
package savegrid

import (
	"fmt"
	"strconv"
	"strings"
)

// Format represents an export format.
type Format string

const (
	// FormatSpreadsheet exports an .xlsx workbook with a single sheet.
	FormatSpreadsheet Format = "xlsx"
	// FormatPDF exports a paginated document.
	FormatPDF Format = "pdf"
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xlsx", "excel", "spreadsheet":
		return FormatSpreadsheet, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q (must be xlsx or pdf)", ErrUnsupportedFormat, s)
	}
}

// LabelFunc resolves a localization key to display text.
// The caller supplies it together with the active locale.
type LabelFunc func(key string) string

// NumberFunc formats an amount for display.
type NumberFunc func(v float64) string

var defaultLabels = map[string]string{
	"day":          "Day",
	"week":         "Week",
	"month":        "Month",
	"total_value":  "Total Value",
	"sheet_name":   "Savings",
	"savings_grid": "Savings Grid",
}

// DefaultLabel is the English fallback resolver.
func DefaultLabel(key string) string {
	if s, ok := defaultLabels[key]; ok {
		return s
	}
	return key
}

// DefaultNumber formats v with the shortest exact decimal representation.
func DefaultNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Options configures how labels and numbers are resolved.
type Options struct {
	// Labels resolves localization keys. If nil, English defaults are used.
	Labels LabelFunc
	// Number formats amounts for display. If nil, DefaultNumber is used.
	Number NumberFunc
}

// DefaultOptions returns English labels and plain number formatting.
func DefaultOptions() Options {
	return Options{
		Labels: DefaultLabel,
		Number: DefaultNumber,
	}
}

// Label resolves key, falling back to English defaults.
func (o Options) Label(key string) string {
	if o.Labels != nil {
		if s := o.Labels(key); s != "" {
			return s
		}
	}
	return DefaultLabel(key)
}

// FormatNumber formats v with the configured formatter.
func (o Options) FormatNumber(v float64) string {
	if o.Number != nil {
		return o.Number(v)
	}
	return DefaultNumber(v)
}
