package exporter

import (
	"fmt"
	"strings"
)

// Page dimensions in millimetres.
const (
	A4Width      = 210.0
	A4Height     = 297.0
	LetterWidth  = 215.9
	LetterHeight = 279.4
	LegalWidth   = 215.9
	LegalHeight  = 355.6
)

// MMPerPoint is the number of millimetres per PostScript point.
// 1 inch = 25.4 mm = 72 pt, therefore 25.4 / 72 mm per point.
const MMPerPoint = 25.4 / 72

// PointsToMM converts PostScript points to millimetres.
func PointsToMM(pt float64) float64 {
	return pt * MMPerPoint
}

// PageSize returns the portrait width and height of a named paper size.
func PageSize(name string) (width, height float64, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "a4":
		return A4Width, A4Height, nil
	case "letter":
		return LetterWidth, LetterHeight, nil
	case "legal":
		return LegalWidth, LegalHeight, nil
	default:
		return 0, 0, fmt.Errorf("unknown page size %q (must be a4, letter or legal)", name)
	}
}
