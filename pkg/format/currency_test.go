package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0.00"},
		{"Small amount", 50.5, "$50.50"},
		{"Thousands separator", 50000, "$50,000.00"},
		{"Millions", 4000000, "$4,000,000.00"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Fractional rounding display", 93000.004, "$93,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %s, expected %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Positive", 22506000, "22,506,000.00"},
		{"Negative", -500.25, "-500.25"},
		{"Zero", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericCurrency(tt.amount); got != tt.expected {
				t.Errorf("NumericCurrency(%v) = %s, expected %s", tt.amount, got, tt.expected)
			}
		})
	}
}
