// Package output provides utilities for formatting and displaying quote results.
package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"installment-calc/internal/config"
	"installment-calc/internal/quote"
	"installment-calc/pkg/mathutil"
)

// PrettyFormat outputs a human-readable breakdown panel per quote plus the
// term comparison table. Whole-currency figures use zero decimal places;
// per-installment figures use two.
func PrettyFormat(results []quote.Result, cfg config.OutputConfig) {
	p := message.NewPrinter(language.Make(cfg.Locale))
	symbol := cfg.CurrencySymbol

	for i, result := range results {
		fmt.Printf("--- Quote %s (%s) ---\n", result.Name, result.Product)
		switch result.Product {
		case config.ProductFlatRate:
			q := result.FlatRate
			_, _ = p.Printf("Down payment        | %s%.0f\n", symbol, q.DownPayment)
			_, _ = p.Printf("Financed amount     | %s%.0f\n", symbol, q.FinanceAmount)
			_, _ = p.Printf("Total interest      | %s%.0f\n", symbol, q.TotalInterest)
			_, _ = p.Printf("Total debt          | %s%.0f\n", symbol, q.TotalDebt)
			_, _ = p.Printf("Installments        | %d\n", q.Months)
			_, _ = p.Printf("Monthly base        | %s%.2f\n", symbol, q.MonthlyBase)
			// Only used vehicles carry a surcharge; skip the line otherwise.
			if !mathutil.IsZero(q.MonthlyTax) {
				_, _ = p.Printf("Monthly tax         | %s%.2f\n", symbol, q.MonthlyTax)
			}
			_, _ = p.Printf("Monthly total       | %s%.2f\n", symbol, q.MonthlyTotal)
			_, _ = p.Printf("Total paid          | %s%.0f\n", symbol, q.TotalPaid)
			fmt.Printf("Term    | Monthly total\n")
			fmt.Printf("____    | _____________\n")
			for _, entry := range result.FlatRateComparison {
				_, _ = p.Printf("%d years | %s%.2f\n", entry.TermYears, symbol, entry.Quote.MonthlyTotal)
			}
		case config.ProductAmortized:
			q := result.Amortized
			_, _ = p.Printf("Down payment        | %s%.0f\n", symbol, q.DownPayment)
			_, _ = p.Printf("Principal           | %s%.0f\n", symbol, q.Principal)
			_, _ = p.Printf("Installments        | %d\n", q.Months)
			_, _ = p.Printf("Monthly payment     | %s%.2f\n", symbol, q.MonthlyPayment)
			_, _ = p.Printf("Total paid          | %s%.0f\n", symbol, q.TotalPaid)
			_, _ = p.Printf("Total interest      | %s%.0f\n", symbol, q.TotalInterest)
			_, _ = p.Printf("First month interest| %s%.2f\n", symbol, q.FirstMonthInterest)
			fmt.Printf("Term     | Monthly payment\n")
			fmt.Printf("____     | _______________\n")
			for _, entry := range result.AmortizedComparison {
				_, _ = p.Printf("%d years | %s%.2f\n", entry.TermYears, symbol, entry.Quote.MonthlyPayment)
			}
		}
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []quote.Result) {
	fmt.Print(CsvString(results))
}

// CsvString renders the comma-separated value format as a string.
func CsvString(results []quote.Result) string {
	var builder strings.Builder
	builder.WriteString(`"name","product","down payment","financed","months","monthly total","total interest","total paid"`)
	builder.WriteString("\n")
	for _, result := range results {
		switch result.Product {
		case config.ProductFlatRate:
			q := result.FlatRate
			builder.WriteString(fmt.Sprintf(`"%s","%s","%.2f","%.2f","%d","%.2f","%.2f","%.2f"`,
				result.Name, result.Product, q.DownPayment, q.FinanceAmount, q.Months,
				q.MonthlyTotal, q.TotalInterest, q.TotalPaid))
			builder.WriteString("\n")
		case config.ProductAmortized:
			q := result.Amortized
			builder.WriteString(fmt.Sprintf(`"%s","%s","%.2f","%.2f","%d","%.2f","%.2f","%.2f"`,
				result.Name, result.Product, q.DownPayment, q.Principal, q.Months,
				q.MonthlyPayment, q.TotalInterest, q.TotalPaid))
			builder.WriteString("\n")
		}
	}
	return builder.String()
}
