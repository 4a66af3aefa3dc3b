package loans

// FlatRateComparison is one row of a flat-rate term comparison table.
type FlatRateComparison struct {
	TermYears int           `json:"termYears"`
	Quote     FlatRateQuote `json:"quote"`
}

// AmortizedComparison is one row of an amortizing term comparison table.
type AmortizedComparison struct {
	TermYears int            `json:"termYears"`
	Quote     AmortizedQuote `json:"quote"`
}

// CompareFlatRate evaluates the quote across the given term lengths with
// all other inputs held fixed. Calls are independent; ordering of the
// result follows the input term list.
func CompareFlatRate(in FlatRateInput, termYears []int) []FlatRateComparison {
	comparisons := make([]FlatRateComparison, 0, len(termYears))
	for _, years := range termYears {
		entry := in
		entry.TermYears = years
		comparisons = append(comparisons, FlatRateComparison{
			TermYears: years,
			Quote:     FlatRate(entry),
		})
	}
	return comparisons
}

// CompareAmortized evaluates the quote across the given term lengths with
// all other inputs held fixed.
func CompareAmortized(in AmortizedInput, termYears []int) []AmortizedComparison {
	comparisons := make([]AmortizedComparison, 0, len(termYears))
	for _, years := range termYears {
		entry := in
		entry.TermYears = years
		comparisons = append(comparisons, AmortizedComparison{
			TermYears: years,
			Quote:     Amortized(entry),
		})
	}
	return comparisons
}
