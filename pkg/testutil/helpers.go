// Package testutil provides common utility functions for testing.
package testutil

import (
	"installment-calc/pkg/loans"
)

// FindFlatRateTerm finds the comparison entry for the given term length.
// Returns a pointer to the entry if found, nil otherwise.
func FindFlatRateTerm(entries []loans.FlatRateComparison, termYears int) *loans.FlatRateComparison {
	for i := range entries {
		if entries[i].TermYears == termYears {
			return &entries[i]
		}
	}
	return nil
}

// FindAmortizedTerm finds the comparison entry for the given term length.
// Returns a pointer to the entry if found, nil otherwise.
func FindAmortizedTerm(entries []loans.AmortizedComparison, termYears int) *loans.AmortizedComparison {
	for i := range entries {
		if entries[i].TermYears == termYears {
			return &entries[i]
		}
	}
	return nil
}
