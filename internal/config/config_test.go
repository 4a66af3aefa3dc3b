package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeTempConfig(t, `---
logging:
  level: debug
  format: console
output:
  format: csv
  locale: en
  currencySymbol: "$"
display:
  theme: dark
comparisonTerms:
  flatRate: [3, 4]
  amortized: [10, 15]
quotes:
  - name: city car
    product: flat-rate
    price: 800000
    downPaymentPercent: 25
    annualRatePercent: 2.5
    termYears: 5
    variant: new
  - name: townhouse
    product: amortizing
    price: 3000000
    downPaymentPercent: 10
    annualRatePercent: 3
    termYears: 30
    firstMonthDays: 31
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if len(conf.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(conf.Quotes))
	}
	if conf.Quotes[0].Product != ProductFlatRate {
		t.Errorf("expected product %s, got %s", ProductFlatRate, conf.Quotes[0].Product)
	}
	if conf.Quotes[0].DownPaymentPercent != 25 {
		t.Errorf("expected down payment percent 25, got %.2f", conf.Quotes[0].DownPaymentPercent)
	}
	if conf.Quotes[1].FirstMonthDays != 31 {
		t.Errorf("expected first month days 31, got %d", conf.Quotes[1].FirstMonthDays)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("expected logging level debug, got %s", conf.Logging.Level)
	}
	if conf.Output.Locale != "en" {
		t.Errorf("expected locale en, got %s", conf.Output.Locale)
	}
	if conf.Display.Theme != "dark" {
		t.Errorf("expected theme dark, got %s", conf.Display.Theme)
	}
	if len(conf.ComparisonTerms.FlatRate) != 2 || conf.ComparisonTerms.FlatRate[0] != 3 {
		t.Errorf("expected flat-rate comparison terms [3 4], got %v", conf.ComparisonTerms.FlatRate)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing config file")
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(`---
quotes:
  - name: quick quote
    product: flat-rate
    price: 500000
    downPaymentPercent: 20
    annualRatePercent: 3
    termYears: 4
`))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if len(conf.Quotes) != 1 || conf.Quotes[0].Price != 500000 {
		t.Fatalf("unexpected quotes: %+v", conf.Quotes)
	}
}

func TestValidateConfigurationDefaults(t *testing.T) {
	conf := Configuration{
		Quotes: []QuoteSpec{
			{Name: "car", Product: ProductFlatRate, Price: 800000, DownPaymentPercent: 25, AnnualRatePercent: 2.5, TermYears: 5},
			{Name: "home", Product: ProductAmortized, Price: 3000000, DownPaymentPercent: 10, AnnualRatePercent: 3, TermYears: 30},
		},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 0 {
		t.Errorf("expected no warnings for valid config, got %v", warnings)
	}

	if conf.Output.Format != "pretty" {
		t.Errorf("expected default output format pretty, got %s", conf.Output.Format)
	}
	if conf.Output.Locale == "" || conf.Output.CurrencySymbol == "" {
		t.Errorf("expected locale and currency defaults, got %+v", conf.Output)
	}
	if conf.Display.Theme != "light" {
		t.Errorf("expected default theme light, got %s", conf.Display.Theme)
	}
	if len(conf.ComparisonTerms.FlatRate) != 4 || conf.ComparisonTerms.FlatRate[0] != 4 {
		t.Errorf("expected default flat-rate terms [4 5 6 7], got %v", conf.ComparisonTerms.FlatRate)
	}
	if len(conf.ComparisonTerms.Amortized) != 4 || conf.ComparisonTerms.Amortized[3] != 35 {
		t.Errorf("expected default amortized terms [20 25 30 35], got %v", conf.ComparisonTerms.Amortized)
	}
	if conf.Quotes[0].Variant != "new" {
		t.Errorf("expected flat-rate variant default new, got %s", conf.Quotes[0].Variant)
	}
	if conf.Quotes[1].FirstMonthDays != 31 {
		t.Errorf("expected default first month days 31, got %d", conf.Quotes[1].FirstMonthDays)
	}
}

func TestValidateConfigurationClampsAndWarns(t *testing.T) {
	conf := Configuration{
		Quotes: []QuoteSpec{
			{Name: "overfunded", Product: ProductFlatRate, Price: 800000, DownPaymentPercent: 140, AnnualRatePercent: 2.5, TermYears: 5, Variant: "new"},
			{Name: "negative", Product: ProductFlatRate, Price: -100, DownPaymentPercent: 10, AnnualRatePercent: -3, TermYears: -3, Variant: "certified"},
			{Name: "mystery", Product: "balloon", Price: 100000, TermYears: 5},
		},
	}

	warnings := conf.ValidateConfiguration()

	if conf.Quotes[0].DownPaymentPercent != 100 {
		t.Errorf("expected down payment percent clamped to 100, got %.2f", conf.Quotes[0].DownPaymentPercent)
	}
	if conf.Quotes[1].Price != 0 {
		t.Errorf("expected negative price zeroed, got %.2f", conf.Quotes[1].Price)
	}
	if conf.Quotes[1].AnnualRatePercent != 0 {
		t.Errorf("expected negative rate zeroed, got %.2f", conf.Quotes[1].AnnualRatePercent)
	}
	if conf.Quotes[1].TermYears != 0 {
		t.Errorf("expected negative term zeroed, got %d", conf.Quotes[1].TermYears)
	}
	if conf.Quotes[1].Variant != "new" {
		t.Errorf("expected unknown variant replaced with new, got %s", conf.Quotes[1].Variant)
	}

	// clamp, price, rate, negative term, zero term, variant, unknown product
	if len(warnings) < 7 {
		t.Errorf("expected at least 7 warnings, got %d: %v", len(warnings), warnings)
	}
	joined := strings.Join(warnings, "\n")
	for _, fragment := range []string{"clamped", "negative price", "negative term", "unknown product"} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("expected warning mentioning %q, got:\n%s", fragment, joined)
		}
	}
}

func TestValidateConfigurationStartMonth(t *testing.T) {
	conf := Configuration{
		Quotes: []QuoteSpec{
			{Name: "feb start", Product: ProductAmortized, Price: 1000000, AnnualRatePercent: 3, TermYears: 20, StartMonth: "2028-02"},
		},
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if conf.Quotes[0].FirstMonthDays != 29 {
		t.Errorf("expected leap February day count 29, got %d", conf.Quotes[0].FirstMonthDays)
	}
}
