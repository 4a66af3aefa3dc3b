package loans

import (
	"math"

	"installment-calc/pkg/constants"
	"installment-calc/pkg/mathutil"
)

// AmortizedInput holds the parameters for an amortizing home loan quote.
// FirstMonthDays selects the day-count convention for the first-month
// interest figure and is expected to be one of 28, 29, 30 or 31; membership
// is the caller's responsibility.
type AmortizedInput struct {
	Price              float64 `json:"price"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	AnnualRatePercent  float64 `json:"annualRatePercent"`
	TermYears          int     `json:"termYears"`
	FirstMonthDays     int     `json:"firstMonthDays"`
}

// AmortizedQuote is the installment breakdown for an amortizing loan.
type AmortizedQuote struct {
	DownPayment        float64 `json:"downPayment"`
	Principal          float64 `json:"principal"`
	Months             int     `json:"months"`
	MonthlyRate        float64 `json:"monthlyRate"`
	MonthlyPayment     float64 `json:"monthlyPayment"`
	TotalPaid          float64 `json:"totalPaid"`
	TotalInterest      float64 `json:"totalInterest"`
	FirstMonthInterest float64 `json:"firstMonthInterest"`
}

// Amortized computes the installment quote for an amortizing loan using the
// standard annuity formula. The first-month interest figure uses a daily
// accrual over a fixed 365-day year regardless of the selected day count;
// it is informational only and is never reconciled against the schedule.
func Amortized(in AmortizedInput) AmortizedQuote {
	// Negative price, rate or term degrade to zero so every monetary output
	// stays non-negative.
	price := mathutil.Max(0, in.Price)
	rate := mathutil.Max(0, in.AnnualRatePercent)
	termYears := in.TermYears
	if termYears < 0 {
		termYears = 0
	}

	downPayment := mathutil.ApplyPercentage(price, in.DownPaymentPercent)
	principal := mathutil.Max(0, price-downPayment)

	months := termYears * constants.MonthsPerYear
	if months < 1 {
		months = 1
	}

	monthlyRate := (rate / constants.PercentageMultiplier) / constants.MonthsPerYear

	var monthlyPayment float64
	switch {
	case principal == 0:
		monthlyPayment = 0
	case monthlyRate == 0:
		// Straight-line repayment; the annuity formula would divide by zero.
		monthlyPayment = principal / float64(months)
	default:
		power := math.Pow(1.00+monthlyRate, float64(months))
		monthlyPayment = principal * (monthlyRate * power) / (power - 1.00)
	}

	totalPaid := monthlyPayment * float64(months)

	// Floor at zero to guard against floating-point underflow leaving a
	// negative interest artifact.
	totalInterest := mathutil.Max(0, totalPaid-principal)

	firstMonthInterest := principal * (rate / constants.PercentageMultiplier) *
		float64(in.FirstMonthDays) / constants.DaysPerYear

	return AmortizedQuote{
		DownPayment:        downPayment,
		Principal:          principal,
		Months:             months,
		MonthlyRate:        monthlyRate,
		MonthlyPayment:     monthlyPayment,
		TotalPaid:          totalPaid,
		TotalInterest:      totalInterest,
		FirstMonthInterest: firstMonthInterest,
	}
}
