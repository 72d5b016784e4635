// Package investment provides monthly-return strategies for investment accounts.
package investment

import (
	"errors"
	"fmt"
	"math"

	"github.com/jgviray/networth-forecast/pkg/constants"
	"go.uber.org/zap"
)

// ErrInvalidConfig indicates investment strategy parameters that cannot
// produce a valid monthly rate.
var ErrInvalidConfig = errors.New("invalid investment config")

// ErrUnknownRiskLevel indicates a risk level outside the supported set.
var ErrUnknownRiskLevel = errors.New("unknown risk level")

// Strategy calculates the monthly return on an investment balance. Strategies
// are stateless across calls; the caller supplies the running balance each
// month.
type Strategy interface {
	Name() string
	MonthlyRate() float64
	MonthlyReturn(balance float64) float64
}

// MonthlyRateFromAnnual converts an annual nominal rate to an effective
// monthly rate via the compounding conversion (1+annual)^(1/12) - 1. Twelve
// applications of the result compound back to exactly 1+annual; a naive
// annual/12 would not.
func MonthlyRateFromAnnual(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/constants.MonthsPerYear) - 1
}

// FlatRate is a strategy with a fixed annual return rate.
type FlatRate struct {
	annualRate  float64
	monthlyRate float64
}

// NewFlatRate creates a flat-rate strategy from an annual rate expressed as a
// decimal fraction, e.g. 0.08 for 8%.
func NewFlatRate(annualRate float64, logger *zap.Logger) (*FlatRate, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if annualRate <= -1 {
		return nil, fmt.Errorf("%w: annual rate must be greater than -100%%, got %.4f", ErrInvalidConfig, annualRate)
	}

	strategy := &FlatRate{
		annualRate:  annualRate,
		monthlyRate: MonthlyRateFromAnnual(annualRate),
	}
	logger.Debug(fmt.Sprintf("flat-rate investment strategy: %.2f%% annual, %.4f%% monthly",
		annualRate*100, strategy.monthlyRate*100),
		zap.String("op", "investment.NewFlatRate"),
	)
	return strategy, nil
}

// Name returns the strategy name.
func (s *FlatRate) Name() string { return "FlatRate" }

// MonthlyRate returns the effective monthly return rate.
func (s *FlatRate) MonthlyRate() float64 { return s.monthlyRate }

// MonthlyReturn returns the return generated in one month on the given balance.
func (s *FlatRate) MonthlyReturn(balance float64) float64 {
	return balance * s.monthlyRate
}

// RiskLevel tags a risk appetite with a fixed return multiplier.
type RiskLevel string

// Supported risk levels.
const (
	Conservative RiskLevel = "conservative"
	Moderate     RiskLevel = "moderate"
	Aggressive   RiskLevel = "aggressive"
)

// riskMultipliers scales the base annual rate before the monthly conversion.
var riskMultipliers = map[RiskLevel]float64{
	Conservative: 0.7,
	Moderate:     1.0,
	Aggressive:   1.3,
}

// RiskAdjusted is a strategy that scales a base annual rate by a risk-level
// multiplier before converting it to a monthly rate.
type RiskAdjusted struct {
	baseRate    float64
	riskLevel   RiskLevel
	monthlyRate float64
}

// NewRiskAdjusted creates a risk-adjusted strategy. The base rate is a decimal
// fraction; the risk level must be one of conservative, moderate, or
// aggressive.
func NewRiskAdjusted(baseRate float64, riskLevel RiskLevel, logger *zap.Logger) (*RiskAdjusted, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	multiplier, ok := riskMultipliers[riskLevel]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRiskLevel, riskLevel)
	}

	adjustedRate := baseRate * multiplier
	if adjustedRate <= -1 {
		return nil, fmt.Errorf("%w: adjusted annual rate must be greater than -100%%, got %.4f", ErrInvalidConfig, adjustedRate)
	}

	strategy := &RiskAdjusted{
		baseRate:    baseRate,
		riskLevel:   riskLevel,
		monthlyRate: MonthlyRateFromAnnual(adjustedRate),
	}
	logger.Debug(fmt.Sprintf("risk-adjusted investment strategy: %.2f%% base, %s risk, %.4f%% monthly",
		baseRate*100, riskLevel, strategy.monthlyRate*100),
		zap.String("op", "investment.NewRiskAdjusted"),
	)
	return strategy, nil
}

// Name returns the strategy name.
func (s *RiskAdjusted) Name() string { return "RiskAdjusted" }

// RiskLevel returns the configured risk level.
func (s *RiskAdjusted) RiskLevel() RiskLevel { return s.riskLevel }

// MonthlyRate returns the effective monthly return rate.
func (s *RiskAdjusted) MonthlyRate() float64 { return s.monthlyRate }

// MonthlyReturn returns the return generated in one month on the given balance.
func (s *RiskAdjusted) MonthlyReturn(balance float64) float64 {
	return balance * s.monthlyRate
}
