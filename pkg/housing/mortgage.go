package housing

import (
	"fmt"

	"github.com/jgviray/networth-forecast/pkg/constants"
	"github.com/jgviray/networth-forecast/pkg/loans"
	"go.uber.org/zap"
)

// MortgageConfig holds the immutable inputs for a mortgage purchase.
// Rates are decimal fractions, e.g. 0.07 for 7%.
type MortgageConfig struct {
	HouseValue          float64
	DownPayment         float64
	LoanTermMonths      int
	LoanInterestRate    float64
	PropertyTaxRate     float64
	MaintenanceCostRate float64
}

// Mortgage is the owning-with-mortgage strategy. The down payment is due at
// month 0, where the loan originates against the remaining house value; fixed
// schedule payments follow for the loan term.
type Mortgage struct {
	config   MortgageConfig
	schedule *loans.Schedule
	logger   *zap.Logger

	houseValue      float64
	month           int
	phase           Phase
	owned           bool
	loanCost        float64
	propertyTax     float64
	maintenanceCost float64
}

// NewMortgage creates a mortgage strategy. The amortization schedule is built
// and validated here so an invalid scenario fails before any month is
// simulated; the schedule takes effect at the month-0 origination.
func NewMortgage(config MortgageConfig, logger *zap.Logger) (*Mortgage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := validateMortgageConfig(config); err != nil {
		return nil, err
	}

	principal := config.HouseValue - config.DownPayment
	schedule, err := loans.NewScheduleGenerator(logger).Build(principal, config.LoanInterestRate, config.LoanTermMonths)
	if err != nil {
		return nil, err
	}

	m := &Mortgage{
		config:     config,
		schedule:   schedule,
		logger:     logger,
		houseValue: config.HouseValue,
		phase:      PhasePreOrigination,
	}
	logger.Debug(fmt.Sprintf("mortgage strategy: house %.2f, down payment %.2f, %d-month loan at %.2f%%",
		config.HouseValue, config.DownPayment, config.LoanTermMonths, config.LoanInterestRate*100),
		zap.String("op", "housing.NewMortgage"),
	)
	return m, nil
}

func validateMortgageConfig(config MortgageConfig) error {
	if config.HouseValue < 0 {
		return fmt.Errorf("%w: house value must be non-negative, got %.2f", ErrInvalidConfig, config.HouseValue)
	}
	if config.DownPayment < 0 {
		return fmt.Errorf("%w: down payment must be non-negative, got %.2f", ErrInvalidConfig, config.DownPayment)
	}
	if config.DownPayment > config.HouseValue {
		return fmt.Errorf("%w: down payment %.2f exceeds house value %.2f", ErrInvalidConfig, config.DownPayment, config.HouseValue)
	}
	if config.LoanTermMonths <= 0 {
		return fmt.Errorf("%w: loan term must be positive, got %d months", ErrInvalidConfig, config.LoanTermMonths)
	}
	if config.LoanInterestRate < 0 || config.PropertyTaxRate < 0 || config.MaintenanceCostRate < 0 {
		return fmt.Errorf("%w: rates must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// Name returns the variant name.
func (m *Mortgage) Name() string { return "Mortgage" }

// OwnsProperty reports that the mortgage variant accrues property value.
func (m *Mortgage) OwnsProperty() bool { return true }

// Schedule returns the cached amortization schedule.
func (m *Mortgage) Schedule() *loans.Schedule { return m.schedule }

// Phase returns the current loan lifecycle phase.
func (m *Mortgage) Phase() Phase { return m.phase }

// Advance computes the cost for the next month. Month 0 is the origination:
// the down payment is due and the home becomes owned. Months 1 through the
// loan term carry the fixed schedule payment; later months carry only the
// tax and maintenance residual.
func (m *Mortgage) Advance() {
	switch {
	case m.month == 0:
		m.loanCost = m.config.DownPayment
		m.owned = true
		m.phase = PhaseAmortizing
		m.logger.Debug(fmt.Sprintf("month 0: mortgage originated for %.2f", m.schedule.Principal),
			zap.String("op", "housing.Mortgage.Advance"),
		)
	case m.month <= m.config.LoanTermMonths:
		m.loanCost = m.schedule.MonthlyPayment
	default:
		m.loanCost = 0
		if m.phase != PhaseRetired {
			m.phase = PhaseRetired
			m.logger.Debug(fmt.Sprintf("month %d: mortgage retired", m.month),
				zap.String("op", "housing.Mortgage.Advance"),
			)
		}
	}

	// Recurring ownership costs track the current house value, so an annual
	// escalation shows up in the very next month.
	if m.owned {
		m.propertyTax = m.houseValue * m.config.PropertyTaxRate / constants.MonthsPerYear
		m.maintenanceCost = m.houseValue * m.config.MaintenanceCostRate / constants.MonthsPerYear
	} else {
		m.propertyTax = 0
		m.maintenanceCost = 0
	}

	m.month++
}

// MonthlyCost returns the housing cost computed by the latest Advance.
func (m *Mortgage) MonthlyCost() float64 {
	return m.loanCost + m.propertyTax + m.maintenanceCost
}

// AssetValue returns the house value while owned, else 0.
func (m *Mortgage) AssetValue() float64 {
	if m.owned {
		return m.houseValue
	}
	return 0
}

// Escalate applies an annual percentage increase to the house value.
func (m *Mortgage) Escalate(pct float64) {
	m.houseValue += m.houseValue * pct
	m.logger.Debug(fmt.Sprintf("house value escalated by %.2f%% to %.2f", pct*100, m.houseValue),
		zap.String("op", "housing.Mortgage.Escalate"),
	)
}
