// Package forecast defines the data structures related to a given forecast and
// includes functions for computing the forecasts.
package forecast

import (
	"fmt"
	"sync"

	"github.com/jgviray/networth-forecast/internal/config"
	"github.com/jgviray/networth-forecast/internal/projection"
	"go.uber.org/zap"
)

// Forecast holds all information related to a specific scenario's projection.
type Forecast struct {
	Name    string
	Records []projection.Record
	Summary projection.Summary
}

// GetForecast runs the projections for all active scenarios and returns one
// Forecast per scenario in configuration order. Every scenario's strategies
// and engine are constructed up front, so an invalid scenario fails the whole
// forecast before any month is simulated. The runs themselves execute
// concurrently; each engine exclusively owns its own strategies and scalars,
// so the runs are fully isolated.
func GetForecast(logger *zap.Logger, conf config.Configuration) ([]Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if conf.Projection.Months <= 0 {
		return nil, fmt.Errorf("%w: months must be positive, got %d", projection.ErrInvalidConfig, conf.Projection.Months)
	}

	type scenarioRun struct {
		name   string
		engine *projection.Engine
	}

	var runs []scenarioRun
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "forecast.GetForecast"),
			)
			continue
		}

		housingStrategy, err := config.BuildHousingStrategy(scenario.Housing, logger)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		investmentStrategy, err := config.BuildInvestmentStrategy(scenario.Investment, logger)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		engine, err := projection.NewEngine(projection.Config{
			Salary:              conf.Profile.Salary,
			OtherIncome:         conf.Profile.OtherIncome,
			DailyLivingExpenses: conf.Profile.DailyLivingExpenses,
			OtherExpenses:       conf.Profile.OtherExpenses,
			SavingsRate:         conf.Allocation.SavingsRate,
			InvestmentsRate:     conf.Allocation.InvestmentsRate,
		}, housingStrategy, investmentStrategy, logger)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		runs = append(runs, scenarioRun{name: scenario.Name, engine: engine})
	}

	params := projection.RunParams{
		Savings:              conf.Projection.StartingSavings,
		Investments:          conf.Projection.StartingInvestments,
		Liabilities:          conf.Projection.StartingLiabilities,
		Months:               conf.Projection.Months,
		IncomeGrowthRate:     conf.Growth.IncomeRate,
		ExpenseGrowthRate:    conf.Growth.ExpenseRate,
		HouseValueGrowthRate: conf.Growth.HouseValueRate,
	}

	results := make([]Forecast, len(runs))
	errs := make([]error, len(runs))
	var wg sync.WaitGroup
	for i := range runs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			records, err := runs[i].engine.Run(params)
			if err != nil {
				errs[i] = fmt.Errorf("scenario %s: %w", runs[i].name, err)
				return
			}
			results[i] = Forecast{
				Name:    runs[i].name,
				Records: records,
				Summary: projection.Analyze(records),
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
