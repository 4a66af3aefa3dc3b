package datetime

import (
	"testing"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected int
	}{
		{"January", "2026-01", 31},
		{"February common year", "2026-02", 28},
		{"February leap year", "2028-02", 29},
		{"April", "2026-04", 30},
		{"December", "2026-12", 31},
		{"Century non-leap", "2100-02", 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := DaysInMonth(tt.date)
			if err != nil {
				t.Fatalf("DaysInMonth(%q) error = %v", tt.date, err)
			}
			if days != tt.expected {
				t.Errorf("DaysInMonth(%q) = %d, expected %d", tt.date, days, tt.expected)
			}
		})
	}
}

func TestDaysInMonthInvalid(t *testing.T) {
	if _, err := DaysInMonth("not-a-date"); err == nil {
		t.Errorf("expected error for malformed date")
	}
	if _, err := DaysInMonth("2026-13"); err == nil {
		t.Errorf("expected error for month out of range")
	}
}
