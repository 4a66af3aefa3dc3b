// Package quote turns configured quote specs into computed installment
// breakdowns with their term comparison tables.
package quote

import (
	"fmt"

	"go.uber.org/zap"

	"installment-calc/internal/config"
	"installment-calc/pkg/loans"
)

// Result holds the computed quote for one spec. Exactly one of the
// FlatRate/Amortized pairs is populated depending on the product.
type Result struct {
	Name                string                      `json:"name"`
	Product             string                      `json:"product"`
	FlatRate            *loans.FlatRateQuote        `json:"flatRate,omitempty"`
	FlatRateComparison  []loans.FlatRateComparison  `json:"flatRateComparison,omitempty"`
	Amortized           *loans.AmortizedQuote       `json:"amortized,omitempty"`
	AmortizedComparison []loans.AmortizedComparison `json:"amortizedComparison,omitempty"`
}

// GetQuotes processes the quotes for all specs in the configuration. Specs
// with an unrecognized product are skipped; ValidateConfiguration has
// already surfaced a warning for them.
func GetQuotes(logger *zap.Logger, conf config.Configuration) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Result
	for _, spec := range conf.Quotes {
		switch spec.Product {
		case config.ProductFlatRate:
			input := loans.FlatRateInput{
				Price:              spec.Price,
				DownPaymentPercent: spec.DownPaymentPercent,
				AnnualRatePercent:  spec.AnnualRatePercent,
				TermYears:          spec.TermYears,
				Variant:            loans.VehicleVariant(spec.Variant),
			}
			q := loans.FlatRate(input)
			logger.Debug(fmt.Sprintf("%s: flat-rate installment %.2f over %d months", spec.Name, q.MonthlyTotal, q.Months),
				zap.String("op", "quote.GetQuotes"),
			)
			results = append(results, Result{
				Name:               spec.Name,
				Product:            spec.Product,
				FlatRate:           &q,
				FlatRateComparison: loans.CompareFlatRate(input, conf.ComparisonTerms.FlatRate),
			})
		case config.ProductAmortized:
			input := loans.AmortizedInput{
				Price:              spec.Price,
				DownPaymentPercent: spec.DownPaymentPercent,
				AnnualRatePercent:  spec.AnnualRatePercent,
				TermYears:          spec.TermYears,
				FirstMonthDays:     spec.FirstMonthDays,
			}
			q := loans.Amortized(input)
			logger.Debug(fmt.Sprintf("%s: amortized payment %.2f over %d months", spec.Name, q.MonthlyPayment, q.Months),
				zap.String("op", "quote.GetQuotes"),
			)
			results = append(results, Result{
				Name:                spec.Name,
				Product:             spec.Product,
				Amortized:           &q,
				AmortizedComparison: loans.CompareAmortized(input, conf.ComparisonTerms.Amortized),
			})
		default:
			logger.Warn(fmt.Sprintf("skipping quote %s with unknown product %q", spec.Name, spec.Product),
				zap.String("op", "quote.GetQuotes"),
			)
		}
	}

	return results, nil
}
