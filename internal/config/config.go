// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"installment-calc/pkg/constants"
	"installment-calc/pkg/datetime"
	"installment-calc/pkg/loans"
	"installment-calc/pkg/validation"
)

// Loan product identifiers used in quote specs.
const (
	ProductFlatRate  = "flat-rate"
	ProductAmortized = "amortizing"
)

// Configuration holds all configuration for installment-calc.
type Configuration struct {
	Quotes          []QuoteSpec
	ComparisonTerms ComparisonTerms `yaml:"comparisonTerms,omitempty"`
	Logging         LoggingConfig   `yaml:"logging,omitempty"`
	Output          OutputConfig    `yaml:"output,omitempty"`
	Display         DisplayConfig   `yaml:"display,omitempty"`
}

// QuoteSpec describes one loan quote to compute. Variant applies to
// flat-rate quotes only; FirstMonthDays and StartMonth apply to amortizing
// quotes only. When StartMonth is set the day count is derived from the
// calendar month and takes precedence over FirstMonthDays.
type QuoteSpec struct {
	Name               string
	Product            string
	Price              float64
	DownPaymentPercent float64 `yaml:"downPaymentPercent"`
	AnnualRatePercent  float64 `yaml:"annualRatePercent"`
	TermYears          int     `yaml:"termYears"`
	Variant            string  `yaml:"variant,omitempty"`
	FirstMonthDays     int     `yaml:"firstMonthDays,omitempty"`
	StartMonth         string  `yaml:"startMonth,omitempty"`
}

// ComparisonTerms holds the term lists (years) used for the side-by-side
// comparison tables.
type ComparisonTerms struct {
	FlatRate  []int `yaml:"flatRate,omitempty"`
	Amortized []int `yaml:"amortized,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format         string `yaml:"format,omitempty"`         // pretty, csv
	Locale         string `yaml:"locale,omitempty"`         // BCP 47 tag, e.g. th, en
	CurrencySymbol string `yaml:"currencySymbol,omitempty"` // prefix symbol for pretty output
}

// DisplayConfig holds the persisted display preference.
type DisplayConfig struct {
	Theme string `yaml:"theme,omitempty"` // light, dark
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from the
// given reader; used by the HTTP server for request-supplied configs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration normalizes the configuration in place and returns
// human-readable warnings for anything it had to adjust. The quote
// calculators do not restrict their input domain themselves, so all
// clamping and enum checking happens here.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
	if conf.Output.Locale == "" {
		conf.Output.Locale = constants.DefaultLocale
	}
	if conf.Output.CurrencySymbol == "" {
		conf.Output.CurrencySymbol = constants.DefaultCurrencySymbol
	}
	if conf.Display.Theme == "" {
		conf.Display.Theme = constants.DefaultTheme
	}
	if err := validation.ValidateTheme(conf.Display.Theme); err != nil {
		warnings = append(warnings, fmt.Sprintf("display: %s; falling back to %s", err, constants.DefaultTheme))
		conf.Display.Theme = constants.DefaultTheme
	}

	if len(conf.ComparisonTerms.FlatRate) == 0 {
		conf.ComparisonTerms.FlatRate = constants.DefaultFlatRateComparisonTerms()
	}
	if len(conf.ComparisonTerms.Amortized) == 0 {
		conf.ComparisonTerms.Amortized = constants.DefaultAmortizedComparisonTerms()
	}

	for i := range conf.Quotes {
		quote := &conf.Quotes[i]

		if quote.Price < 0 {
			warnings = append(warnings, fmt.Sprintf("quote %s: negative price %.2f treated as 0", quote.Name, quote.Price))
			quote.Price = 0
		}
		if clamped := validation.ClampPercent(quote.DownPaymentPercent); clamped != quote.DownPaymentPercent {
			warnings = append(warnings, fmt.Sprintf("quote %s: down payment percent %.2f clamped to %.2f",
				quote.Name, quote.DownPaymentPercent, clamped))
			quote.DownPaymentPercent = clamped
		}
		if quote.AnnualRatePercent < 0 {
			warnings = append(warnings, fmt.Sprintf("quote %s: negative interest rate %.2f treated as 0",
				quote.Name, quote.AnnualRatePercent))
			quote.AnnualRatePercent = 0
		}
		if quote.TermYears < 0 {
			warnings = append(warnings, fmt.Sprintf("quote %s: negative term of %d years treated as 0",
				quote.Name, quote.TermYears))
			quote.TermYears = 0
		}
		if quote.TermYears == 0 {
			warnings = append(warnings, fmt.Sprintf("quote %s: term of 0 years floors to a single installment",
				quote.Name))
		}

		switch quote.Product {
		case ProductFlatRate:
			if quote.Variant == "" {
				quote.Variant = string(loans.VariantNew)
			}
			if err := validation.ValidateVariant(loans.VehicleVariant(quote.Variant)); err != nil {
				warnings = append(warnings, fmt.Sprintf("quote %s: %s; treating as %s", quote.Name, err, loans.VariantNew))
				quote.Variant = string(loans.VariantNew)
			}
		case ProductAmortized:
			if quote.StartMonth != "" {
				days, err := datetime.DaysInMonth(quote.StartMonth)
				if err != nil {
					warnings = append(warnings, fmt.Sprintf("quote %s: invalid start month %q: %v", quote.Name, quote.StartMonth, err))
				} else {
					quote.FirstMonthDays = days
				}
			}
			if quote.FirstMonthDays == 0 {
				quote.FirstMonthDays = constants.DefaultFirstMonthDays
			}
			if err := validation.ValidateFirstMonthDays(quote.FirstMonthDays); err != nil {
				warnings = append(warnings, fmt.Sprintf("quote %s: %s; treating as %d",
					quote.Name, err, constants.DefaultFirstMonthDays))
				quote.FirstMonthDays = constants.DefaultFirstMonthDays
			}
		default:
			warnings = append(warnings, fmt.Sprintf("quote %s: unknown product %q (expected %s or %s)",
				quote.Name, quote.Product, ProductFlatRate, ProductAmortized))
		}
	}

	return warnings
}
