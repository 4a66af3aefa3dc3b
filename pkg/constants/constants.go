// Package constants provides shared constants for the installment-calc application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the fixed denominator used for daily interest accrual
	DaysPerYear = 365.0

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// UsedVehicleTaxRate is the flat value-added tax surcharge applied to
	// the monthly base installment of used-vehicle flat-rate loans. The
	// rate is fixed and intentionally not configurable.
	UsedVehicleTaxRate = 0.07
)

// Day-count convention bounds for the first-month interest figure.
const (
	MinFirstMonthDays = 28
	MaxFirstMonthDays = 31

	// DefaultFirstMonthDays is used when a quote does not select a day count.
	DefaultFirstMonthDays = 31
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Display theme constants
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	// DefaultTheme is used when no display preference has been persisted.
	DefaultTheme = ThemeLight
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRateLimitPerMinute is the default per-client request budget
	DefaultRateLimitPerMinute = 60
)

// Default output locale settings; the original calculator targets Thai consumers.
const (
	DefaultLocale         = "th"
	DefaultCurrencySymbol = "฿"
)

// DefaultFlatRateComparisonTerms returns the term lengths in years compared
// side by side for flat-rate vehicle loans.
func DefaultFlatRateComparisonTerms() []int {
	return []int{4, 5, 6, 7}
}

// DefaultAmortizedComparisonTerms returns the term lengths in years compared
// side by side for amortizing home loans.
func DefaultAmortizedComparisonTerms() []int {
	return []int{20, 25, 30, 35}
}
