package validation

import (
	"testing"

	"installment-calc/pkg/loans"
)

func TestClampPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"In range", 25, 25},
		{"Zero", 0, 0},
		{"Hundred", 100, 100},
		{"Negative clamps to zero", -10, 0},
		{"Above hundred clamps", 150, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ClampPercent(tt.input); result != tt.expected {
				t.Errorf("ClampPercent(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidateVariant(t *testing.T) {
	if err := ValidateVariant(loans.VariantNew); err != nil {
		t.Errorf("unexpected error for new variant: %v", err)
	}
	if err := ValidateVariant(loans.VariantUsed); err != nil {
		t.Errorf("unexpected error for used variant: %v", err)
	}
	if err := ValidateVariant("certified"); err == nil {
		t.Errorf("expected error for unknown variant")
	}
}

func TestValidateFirstMonthDays(t *testing.T) {
	for _, days := range []int{28, 29, 30, 31} {
		if err := ValidateFirstMonthDays(days); err != nil {
			t.Errorf("unexpected error for %d days: %v", days, err)
		}
	}
	for _, days := range []int{0, 27, 32, -1} {
		if err := ValidateFirstMonthDays(days); err == nil {
			t.Errorf("expected error for %d days", days)
		}
	}
}

func TestValidateOutputFormat(t *testing.T) {
	if err := ValidateOutputFormat("pretty"); err != nil {
		t.Errorf("unexpected error for pretty: %v", err)
	}
	if err := ValidateOutputFormat("csv"); err != nil {
		t.Errorf("unexpected error for csv: %v", err)
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Errorf("expected error for unsupported format")
	}
}

func TestValidateTheme(t *testing.T) {
	if err := ValidateTheme("light"); err != nil {
		t.Errorf("unexpected error for light: %v", err)
	}
	if err := ValidateTheme("dark"); err != nil {
		t.Errorf("unexpected error for dark: %v", err)
	}
	if err := ValidateTheme("sepia"); err == nil {
		t.Errorf("expected error for unsupported theme")
	}
}
