package config

import (
	"fmt"

	"github.com/jgviray/networth-forecast/pkg/housing"
	"github.com/jgviray/networth-forecast/pkg/investment"
	"go.uber.org/zap"
)

// BuildHousingStrategy constructs the housing strategy selected by the given
// config. Every call returns a fresh instance because strategies carry
// month-indexed state and must not be shared between runs.
func BuildHousingStrategy(conf HousingConfig, logger *zap.Logger) (housing.Strategy, error) {
	switch conf.Type {
	case HousingTypeMortgage:
		return housing.NewMortgage(housing.MortgageConfig{
			HouseValue:          conf.HouseValue,
			DownPayment:         conf.DownPayment,
			LoanTermMonths:      conf.LoanTermMonths,
			LoanInterestRate:    conf.LoanInterestRate,
			PropertyTaxRate:     conf.PropertyTaxRate,
			MaintenanceCostRate: conf.MaintenanceCostRate,
		}, logger)
	case HousingTypePreselling:
		tiers := make([]housing.InstallmentTier, 0, len(conf.Installments))
		for _, tier := range conf.Installments {
			tiers = append(tiers, housing.InstallmentTier{
				FromMonth: tier.FromMonth,
				ToMonth:   tier.ToMonth,
				Payment:   tier.Payment,
			})
		}
		return housing.NewPreselling(housing.PresellingConfig{
			HouseValue:            conf.HouseValue,
			PresellingDownPayment: conf.PresellingDownPayment,
			LumpSum:               conf.LumpSum,
			LoanDownPayment:       conf.LoanDownPayment,
			OriginationFee:        conf.OriginationFee,
			Installments:          tiers,
			LoanTermMonths:        conf.LoanTermMonths,
			LoanInterestRate:      conf.LoanInterestRate,
			PropertyTaxRate:       conf.PropertyTaxRate,
			MaintenanceCostRate:   conf.MaintenanceCostRate,
		}, logger)
	case HousingTypeRent:
		return housing.NewRent(housing.RentConfig{Rent: conf.Rent}, logger)
	default:
		return nil, fmt.Errorf("%w: unknown housing type %q", housing.ErrInvalidConfig, conf.Type)
	}
}

// BuildInvestmentStrategy constructs the investment strategy selected by the
// given config.
func BuildInvestmentStrategy(conf InvestmentConfig, logger *zap.Logger) (investment.Strategy, error) {
	switch conf.Type {
	case InvestmentTypeFlat:
		return investment.NewFlatRate(conf.AnnualReturnRate, logger)
	case InvestmentTypeRiskAdjusted:
		return investment.NewRiskAdjusted(conf.AnnualReturnRate, investment.RiskLevel(conf.RiskLevel), logger)
	default:
		return nil, fmt.Errorf("%w: unknown investment type %q", investment.ErrInvalidConfig, conf.Type)
	}
}
