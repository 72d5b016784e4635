package config

import (
	"errors"
	"testing"

	"github.com/jgviray/networth-forecast/pkg/housing"
	"github.com/jgviray/networth-forecast/pkg/investment"
)

func TestBuildHousingStrategy(t *testing.T) {
	tests := []struct {
		name         string
		conf         HousingConfig
		expectedName string
	}{
		{
			name: "Mortgage",
			conf: HousingConfig{
				Type:             HousingTypeMortgage,
				HouseValue:       22506000,
				DownPayment:      4501200,
				LoanTermMonths:   240,
				LoanInterestRate: 0.07,
			},
			expectedName: "Mortgage",
		},
		{
			name: "Preselling",
			conf: HousingConfig{
				Type:                  HousingTypePreselling,
				HouseValue:            22050600,
				PresellingDownPayment: 2370665.91,
				LumpSum:               17644661.35,
				LoanDownPayment:       3528932.27,
				LoanTermMonths:        240,
				LoanInterestRate:      0.07,
				Installments: []InstallmentTier{
					{FromMonth: 1, ToMonth: 24, Payment: 52513.87},
					{FromMonth: 25, ToMonth: 48, Payment: 73519.42},
					{FromMonth: 49, ToMonth: 60, Payment: 168044.39},
				},
			},
			expectedName: "Preselling",
		},
		{
			name:         "Rent",
			conf:         HousingConfig{Type: HousingTypeRent, Rent: 50000},
			expectedName: "Rent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := BuildHousingStrategy(tt.conf, nil)
			if err != nil {
				t.Fatalf("BuildHousingStrategy() error = %v", err)
			}
			if strategy.Name() != tt.expectedName {
				t.Errorf("strategy name = %q, expected %q", strategy.Name(), tt.expectedName)
			}
		})
	}
}

func TestBuildHousingStrategyFreshInstances(t *testing.T) {
	conf := HousingConfig{Type: HousingTypeRent, Rent: 50000}

	first, err := BuildHousingStrategy(conf, nil)
	if err != nil {
		t.Fatalf("BuildHousingStrategy() error = %v", err)
	}
	second, err := BuildHousingStrategy(conf, nil)
	if err != nil {
		t.Fatalf("BuildHousingStrategy() error = %v", err)
	}

	// Strategies carry month state, so each build must be independent.
	first.Escalate(0.05)
	if second.MonthlyCost() != 50000 {
		t.Errorf("second instance cost = %.2f after mutating the first, expected 50000", second.MonthlyCost())
	}
}

func TestBuildHousingStrategyErrors(t *testing.T) {
	tests := []struct {
		name string
		conf HousingConfig
	}{
		{"Unknown type", HousingConfig{Type: "houseboat"}},
		{"Empty type", HousingConfig{}},
		{"Invalid mortgage", HousingConfig{Type: HousingTypeMortgage, HouseValue: -1, LoanTermMonths: 240}},
		{"Invalid rent", HousingConfig{Type: HousingTypeRent, Rent: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildHousingStrategy(tt.conf, nil)
			if !errors.Is(err, housing.ErrInvalidConfig) {
				t.Errorf("BuildHousingStrategy() error = %v, expected housing.ErrInvalidConfig", err)
			}
		})
	}
}

func TestBuildInvestmentStrategy(t *testing.T) {
	flat, err := BuildInvestmentStrategy(InvestmentConfig{Type: InvestmentTypeFlat, AnnualReturnRate: 0.08}, nil)
	if err != nil {
		t.Fatalf("BuildInvestmentStrategy(flat) error = %v", err)
	}
	if flat.Name() != "FlatRate" {
		t.Errorf("flat strategy name = %q, expected FlatRate", flat.Name())
	}

	adjusted, err := BuildInvestmentStrategy(InvestmentConfig{
		Type:             InvestmentTypeRiskAdjusted,
		AnnualReturnRate: 0.08,
		RiskLevel:        "aggressive",
	}, nil)
	if err != nil {
		t.Fatalf("BuildInvestmentStrategy(risk-adjusted) error = %v", err)
	}
	if adjusted.MonthlyRate() <= flat.MonthlyRate() {
		t.Errorf("aggressive rate %v not above flat rate %v", adjusted.MonthlyRate(), flat.MonthlyRate())
	}
}

func TestBuildInvestmentStrategyErrors(t *testing.T) {
	_, err := BuildInvestmentStrategy(InvestmentConfig{Type: "crypto"}, nil)
	if !errors.Is(err, investment.ErrInvalidConfig) {
		t.Errorf("unknown type error = %v, expected investment.ErrInvalidConfig", err)
	}

	_, err = BuildInvestmentStrategy(InvestmentConfig{
		Type:             InvestmentTypeRiskAdjusted,
		AnnualReturnRate: 0.08,
		RiskLevel:        "reckless",
	}, nil)
	if !errors.Is(err, investment.ErrUnknownRiskLevel) {
		t.Errorf("bad risk level error = %v, expected investment.ErrUnknownRiskLevel", err)
	}
}
