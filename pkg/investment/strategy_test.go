package investment

import (
	"errors"
	"math"
	"testing"
)

func TestMonthlyRateFromAnnual(t *testing.T) {
	tests := []struct {
		name       string
		annualRate float64
	}{
		{"8% annual", 0.08},
		{"7% annual", 0.07},
		{"Zero rate", 0.0},
		{"Negative rate", -0.05},
		{"High rate", 0.30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthlyRate := MonthlyRateFromAnnual(tt.annualRate)

			// Twelve monthly applications must compound to exactly the
			// annual growth factor.
			compounded := math.Pow(1+monthlyRate, 12)
			if math.Abs(compounded-(1+tt.annualRate)) > 1e-9 {
				t.Errorf("compounding 12 months of %v = %v, expected %v",
					monthlyRate, compounded, 1+tt.annualRate)
			}
		})
	}
}

func TestMonthlyRateIsNotNaiveDivision(t *testing.T) {
	// The conversion is (1+r)^(1/12)-1, deliberately not r/12.
	monthlyRate := MonthlyRateFromAnnual(0.08)
	naive := 0.08 / 12
	if math.Abs(monthlyRate-naive) < 1e-6 {
		t.Errorf("monthly rate %v is indistinguishable from naive division %v", monthlyRate, naive)
	}
}

func TestFlatRate(t *testing.T) {
	strategy, err := NewFlatRate(0.08, nil)
	if err != nil {
		t.Fatalf("NewFlatRate() error = %v", err)
	}

	balance := 4000000.0
	expected := balance * (math.Pow(1.08, 1.0/12) - 1)
	if math.Abs(strategy.MonthlyReturn(balance)-expected) > 0.01 {
		t.Errorf("MonthlyReturn(%v) = %v, expected %v", balance, strategy.MonthlyReturn(balance), expected)
	}

	// Stateless: repeated calls with the same balance agree exactly.
	if strategy.MonthlyReturn(balance) != strategy.MonthlyReturn(balance) {
		t.Error("MonthlyReturn() is not stable across calls")
	}
}

func TestFlatRateInvalidRate(t *testing.T) {
	_, err := NewFlatRate(-1.5, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewFlatRate(-1.5) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestRiskAdjusted(t *testing.T) {
	tests := []struct {
		name       string
		baseRate   float64
		riskLevel  RiskLevel
		multiplier float64
	}{
		{"Conservative", 0.08, Conservative, 0.7},
		{"Moderate", 0.08, Moderate, 1.0},
		{"Aggressive", 0.08, Aggressive, 1.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := NewRiskAdjusted(tt.baseRate, tt.riskLevel, nil)
			if err != nil {
				t.Fatalf("NewRiskAdjusted() error = %v", err)
			}

			expected := MonthlyRateFromAnnual(tt.baseRate * tt.multiplier)
			if math.Abs(strategy.MonthlyRate()-expected) > 1e-12 {
				t.Errorf("MonthlyRate() = %v, expected %v", strategy.MonthlyRate(), expected)
			}
		})
	}
}

func TestRiskAdjustedMatchesFlatRateAtModerate(t *testing.T) {
	flat, err := NewFlatRate(0.08, nil)
	if err != nil {
		t.Fatalf("NewFlatRate() error = %v", err)
	}
	adjusted, err := NewRiskAdjusted(0.08, Moderate, nil)
	if err != nil {
		t.Fatalf("NewRiskAdjusted() error = %v", err)
	}

	if flat.MonthlyRate() != adjusted.MonthlyRate() {
		t.Errorf("moderate risk rate %v differs from flat rate %v", adjusted.MonthlyRate(), flat.MonthlyRate())
	}
}

func TestRiskAdjustedUnknownLevel(t *testing.T) {
	tests := []struct {
		name      string
		riskLevel RiskLevel
	}{
		{"Empty level", ""},
		{"Misspelled level", "agressive"},
		{"Unsupported level", "yolo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRiskAdjusted(0.08, tt.riskLevel, nil)
			if !errors.Is(err, ErrUnknownRiskLevel) {
				t.Errorf("NewRiskAdjusted() error = %v, expected ErrUnknownRiskLevel", err)
			}
		})
	}
}
