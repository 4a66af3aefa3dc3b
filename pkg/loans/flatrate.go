// Package loans provides the installment quote calculations for the two
// supported loan products: flat-rate vehicle loans and amortizing home
// loans. Both calculators are pure, total functions; invalid numeric input
// degrades to zero or floored values rather than producing an error.
package loans

import (
	"installment-calc/pkg/constants"
	"installment-calc/pkg/mathutil"
)

// VehicleVariant selects the tax treatment for a flat-rate vehicle loan.
type VehicleVariant string

const (
	// VariantNew is a new vehicle; no tax surcharge applies.
	VariantNew VehicleVariant = "new"

	// VariantUsed is a used vehicle; the monthly base installment carries
	// the fixed tax surcharge.
	VariantUsed VehicleVariant = "used"
)

// FlatRateInput holds the parameters for a flat-rate vehicle loan quote.
// DownPaymentPercent is expected to already be restricted to [0, 100] by
// the caller; the calculator does not clamp it.
type FlatRateInput struct {
	Price              float64        `json:"price"`
	DownPaymentPercent float64        `json:"downPaymentPercent"`
	AnnualRatePercent  float64        `json:"annualRatePercent"`
	TermYears          int            `json:"termYears"`
	Variant            VehicleVariant `json:"variant"`
}

// FlatRateQuote is the installment breakdown for a flat-rate loan.
type FlatRateQuote struct {
	DownPayment   float64 `json:"downPayment"`
	FinanceAmount float64 `json:"financeAmount"`
	TotalInterest float64 `json:"totalInterest"`
	TotalDebt     float64 `json:"totalDebt"`
	Months        int     `json:"months"`
	MonthlyBase   float64 `json:"monthlyBase"`
	MonthlyTax    float64 `json:"monthlyTax"`
	MonthlyTotal  float64 `json:"monthlyTotal"`
	TotalPaid     float64 `json:"totalPaid"`
}

// FlatRate computes the installment quote for a flat-rate vehicle loan.
// Interest is simple (non-compounding), charged once on the financed
// amount and spread evenly over the term. Used vehicles additionally carry
// the fixed tax surcharge on the monthly base installment.
func FlatRate(in FlatRateInput) FlatRateQuote {
	// Negative price, rate or term degrade to zero so every monetary output
	// stays non-negative.
	price := mathutil.Max(0, in.Price)
	rate := mathutil.Max(0, in.AnnualRatePercent)
	termYears := in.TermYears
	if termYears < 0 {
		termYears = 0
	}

	downPayment := mathutil.ApplyPercentage(price, in.DownPaymentPercent)
	financeAmount := mathutil.Max(0, price-downPayment)

	// Simple interest scales linearly with the term length.
	totalInterest := financeAmount * (rate / constants.PercentageMultiplier) * float64(termYears)
	totalDebt := financeAmount + totalInterest

	// Floor at one installment so a zero-length term never divides by zero.
	months := termYears * constants.MonthsPerYear
	if months < 1 {
		months = 1
	}

	monthlyBase := totalDebt / float64(months)
	monthlyTax := 0.0
	if in.Variant == VariantUsed {
		monthlyTax = monthlyBase * constants.UsedVehicleTaxRate
	}
	monthlyTotal := monthlyBase + monthlyTax

	return FlatRateQuote{
		DownPayment:   downPayment,
		FinanceAmount: financeAmount,
		TotalInterest: totalInterest,
		TotalDebt:     totalDebt,
		Months:        months,
		MonthlyBase:   monthlyBase,
		MonthlyTax:    monthlyTax,
		MonthlyTotal:  monthlyTotal,
		TotalPaid:     downPayment + monthlyTotal*float64(months),
	}
}
