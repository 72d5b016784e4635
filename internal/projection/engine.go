// Package projection implements the monthly net-worth simulation loop over a
// housing strategy and an investment strategy.
package projection

import (
	"errors"
	"fmt"

	"github.com/jgviray/networth-forecast/pkg/housing"
	"github.com/jgviray/networth-forecast/pkg/investment"
	"go.uber.org/zap"
)

// ErrInvalidConfig indicates projection parameters that cannot produce a
// valid run.
var ErrInvalidConfig = errors.New("invalid projection config")

// Record captures the state of a projection at the end of one simulated
// month. The full projection is an append-only ordered sequence of records,
// one per month, never mutated after Run returns.
type Record struct {
	Month            int
	NetWorth         float64
	HouseValue       float64
	HousingCost      float64
	Cashflow         float64
	Investments      float64
	InvestmentReturn float64
	Savings          float64
	Liabilities      float64
}

// Config holds the income, expense, and allocation parameters for a
// projection. All values are fixed at construction; the engine escalates its
// own working copies during a run.
type Config struct {
	Salary              float64
	OtherIncome         float64
	DailyLivingExpenses float64
	OtherExpenses       float64

	// SavingsRate and InvestmentsRate split a positive monthly budget
	// between the savings and investment accounts.
	SavingsRate     float64
	InvestmentsRate float64
}

// RunParams holds the starting balances and growth assumptions for a run.
// Rates are decimal fractions applied once per 12 simulated months.
type RunParams struct {
	Savings     float64
	Investments float64
	Liabilities float64
	Months      int

	IncomeGrowthRate     float64
	ExpenseGrowthRate    float64
	HouseValueGrowthRate float64
}

// Engine drives a single projection run. It exclusively owns its running
// scalars and its strategy instances for the duration of the run; because
// housing strategies carry month-indexed state, an Engine is good for exactly
// one Run and must never be shared between concurrent runs.
type Engine struct {
	config     Config
	housing    housing.Strategy
	investment investment.Strategy
	logger     *zap.Logger
}

// NewEngine creates a projection engine over the given strategies.
func NewEngine(config Config, housingStrategy housing.Strategy, investmentStrategy investment.Strategy, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if housingStrategy == nil {
		return nil, fmt.Errorf("%w: housing strategy is required", ErrInvalidConfig)
	}
	if investmentStrategy == nil {
		return nil, fmt.Errorf("%w: investment strategy is required", ErrInvalidConfig)
	}
	if config.SavingsRate < 0 || config.InvestmentsRate < 0 {
		return nil, fmt.Errorf("%w: allocation rates must be non-negative", ErrInvalidConfig)
	}

	return &Engine{
		config:     config,
		housing:    housingStrategy,
		investment: investmentStrategy,
		logger:     logger,
	}, nil
}

// Run simulates the projection month by month and returns one record per
// month. The loop itself has no failure path; all parameter validation
// happens up front.
func (e *Engine) Run(params RunParams) ([]Record, error) {
	if params.Months <= 0 {
		return nil, fmt.Errorf("%w: months must be positive, got %d", ErrInvalidConfig, params.Months)
	}

	salary := e.config.Salary
	otherIncome := e.config.OtherIncome
	dailyLiving := e.config.DailyLivingExpenses
	otherExpenses := e.config.OtherExpenses
	savings := params.Savings
	investments := params.Investments
	liabilities := params.Liabilities

	e.logger.Debug(fmt.Sprintf("starting %d-month projection: %s housing, %s investment",
		params.Months, e.housing.Name(), e.investment.Name()),
		zap.String("op", "projection.Run"),
		zap.Float64("savings", savings),
		zap.Float64("investments", investments),
		zap.Float64("liabilities", liabilities),
	)

	records := make([]Record, 0, params.Months)

	for month := 1; month <= params.Months; month++ {
		// Annual escalation at the start of each simulated year after the
		// first. Owning variants escalate with house-value growth; renting
		// escalates with expense growth.
		if month%12 == 1 && month > 1 {
			salary += salary * params.IncomeGrowthRate
			otherIncome += otherIncome * params.IncomeGrowthRate
			dailyLiving += dailyLiving * params.ExpenseGrowthRate
			otherExpenses += otherExpenses * params.ExpenseGrowthRate
			if e.housing.OwnsProperty() {
				e.housing.Escalate(params.HouseValueGrowthRate)
			} else {
				e.housing.Escalate(params.ExpenseGrowthRate)
			}
		}

		e.housing.Advance()

		budget := (salary + otherIncome) - (e.housing.MonthlyCost() + dailyLiving + otherExpenses)

		investmentReturn := e.investment.MonthlyReturn(investments)
		investments += investmentReturn

		if budget >= 0 {
			savings += budget * e.config.SavingsRate
			investments += budget * e.config.InvestmentsRate
		} else {
			// Liquidity shortfalls are absorbed by the investment account
			// only; savings stay untouched.
			investments += budget
		}

		assetValue := e.housing.AssetValue()

		records = append(records, Record{
			Month:            month,
			NetWorth:         savings + investments - liabilities + assetValue,
			HouseValue:       assetValue,
			HousingCost:      e.housing.MonthlyCost(),
			Cashflow:         budget,
			Investments:      investments,
			InvestmentReturn: investmentReturn,
			Savings:          savings,
			Liabilities:      liabilities,
		})
	}

	return records, nil
}
