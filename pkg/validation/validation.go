// Package validation provides caller-side input-domain restriction. The
// quote calculators are total functions that do not validate enum
// membership or clamp percentages themselves; every entry point (config
// loading, HTTP handlers) is expected to pass inputs through this package
// first.
package validation

import (
	"fmt"

	"installment-calc/pkg/constants"
	"installment-calc/pkg/loans"
)

// ClampPercent restricts a percentage to [0, 100].
func ClampPercent(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > constants.PercentageMultiplier {
		return constants.PercentageMultiplier
	}
	return value
}

// ValidateVariant checks vehicle variant membership.
func ValidateVariant(variant loans.VehicleVariant) error {
	if variant != loans.VariantNew && variant != loans.VariantUsed {
		return fmt.Errorf("expected vehicle variant of %s or %s, got %s",
			loans.VariantNew, loans.VariantUsed, variant)
	}
	return nil
}

// ValidateFirstMonthDays checks day-count convention membership (28-31).
func ValidateFirstMonthDays(days int) error {
	if days < constants.MinFirstMonthDays || days > constants.MaxFirstMonthDays {
		return fmt.Errorf("expected first-month day count between %d and %d, got %d",
			constants.MinFirstMonthDays, constants.MaxFirstMonthDays, days)
	}
	return nil
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateTheme checks if the display theme is one of the supported themes.
func ValidateTheme(theme string) error {
	if theme != constants.ThemeLight && theme != constants.ThemeDark {
		return fmt.Errorf("expected theme of %s or %s, got %s",
			constants.ThemeLight, constants.ThemeDark, theme)
	}
	return nil
}
