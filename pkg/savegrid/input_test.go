package savegrid

import (
	"errors"
	"math"
	"testing"

	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
)

func TestParsePeriodUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected models.PeriodUnit
		wantErr  bool
	}{
		{"day", models.Day, false},
		{"Days", models.Day, false},
		{"w", models.Week, false},
		{" weeks ", models.Week, false},
		{"MONTH", models.Month, false},
		{"year", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		result, err := ParsePeriodUnit(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePeriodUnit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParsePeriodUnit(%q) error %v does not wrap ErrInvalidInput", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("ParsePeriodUnit(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidateInput(t *testing.T) {
	valid := models.SavingsInput{PeriodUnit: models.Day, PeriodCount: 10, AmountPerPeriod: 5, ColumnCount: 7}

	tests := []struct {
		name   string
		mutate func(*models.SavingsInput)
		field  string
	}{
		{"valid", func(*models.SavingsInput) {}, ""},
		{"zero periods allowed", func(in *models.SavingsInput) { in.PeriodCount = 0 }, ""},
		{"negative periods", func(in *models.SavingsInput) { in.PeriodCount = -1 }, "period count"},
		{"too few columns", func(in *models.SavingsInput) { in.ColumnCount = 2 }, "column count"},
		{"too many columns", func(in *models.SavingsInput) { in.ColumnCount = 11 }, "column count"},
		{"negative amount", func(in *models.SavingsInput) { in.AmountPerPeriod = -5 }, "amount per period"},
		{"NaN amount", func(in *models.SavingsInput) { in.AmountPerPeriod = math.NaN() }, "amount per period"},
		{"unknown unit", func(in *models.SavingsInput) { in.PeriodUnit = "year" }, "period unit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := ValidateInput(in)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected *InputError, got %v", err)
			}
			if inputErr.Field != tt.field {
				t.Errorf("field = %q, want %q", inputErr.Field, tt.field)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error does not wrap ErrInvalidInput")
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("XLSX"); err != nil || f != FormatSpreadsheet {
		t.Errorf("ParseFormat(XLSX) = %q, %v", f, err)
	}
	if f, err := ParseFormat("pdf"); err != nil || f != FormatPDF {
		t.Errorf("ParseFormat(pdf) = %q, %v", f, err)
	}
	if _, err := ParseFormat("docx"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ParseFormat(docx) error = %v, want ErrUnsupportedFormat", err)
	}
}
