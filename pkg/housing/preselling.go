package housing

import (
	"fmt"

	"github.com/jgviray/networth-forecast/pkg/constants"
	"github.com/jgviray/networth-forecast/pkg/loans"
	"go.uber.org/zap"
)

// InstallmentTier is a fixed monthly payment owed over an inclusive month
// range of the preselling phase. Tier amounts are developer policy constants
// supplied as configuration, never derived from a formula.
type InstallmentTier struct {
	FromMonth int
	ToMonth   int
	Payment   float64
}

// PresellingConfig holds the immutable inputs for a preselling purchase.
// Rates are decimal fractions, e.g. 0.07 for 7%.
type PresellingConfig struct {
	HouseValue            float64
	PresellingDownPayment float64
	LumpSum               float64
	LoanDownPayment       float64
	// OriginationFee is an optional turnover adjustment added to the loan
	// down payment in the origination month.
	OriginationFee      float64
	Installments        []InstallmentTier
	LoanTermMonths      int
	LoanInterestRate    float64
	PropertyTaxRate     float64
	MaintenanceCostRate float64
}

// Preselling is the owning-through-preselling strategy: an interest-free down
// payment at month 0, tiered fixed installments through the preselling phase,
// then a bank loan against the lump sum at turnover.
type Preselling struct {
	config   PresellingConfig
	schedule *loans.Schedule
	logger   *zap.Logger

	// originationMonth is the first month past the last installment tier,
	// where the bank loan takes over.
	originationMonth int

	houseValue      float64
	month           int
	phase           Phase
	owned           bool
	loanCost        float64
	propertyTax     float64
	maintenanceCost float64
}

// NewPreselling creates a preselling strategy. The bank-loan schedule against
// the lump sum is built and validated here so an invalid scenario fails
// before any month is simulated; the schedule takes effect at turnover.
func NewPreselling(config PresellingConfig, logger *zap.Logger) (*Preselling, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := validatePresellingConfig(config); err != nil {
		return nil, err
	}

	schedule, err := loans.NewScheduleGenerator(logger).Build(config.LumpSum, config.LoanInterestRate, config.LoanTermMonths)
	if err != nil {
		return nil, err
	}

	p := &Preselling{
		config:           config,
		schedule:         schedule,
		logger:           logger,
		originationMonth: config.Installments[len(config.Installments)-1].ToMonth + 1,
		houseValue:       config.HouseValue,
		phase:            PhasePreOrigination,
	}
	logger.Debug(fmt.Sprintf("preselling strategy: house %.2f, %d installment tiers, loan turnover at month %d",
		config.HouseValue, len(config.Installments), p.originationMonth),
		zap.String("op", "housing.NewPreselling"),
	)
	return p, nil
}

func validatePresellingConfig(config PresellingConfig) error {
	if config.HouseValue < 0 {
		return fmt.Errorf("%w: house value must be non-negative, got %.2f", ErrInvalidConfig, config.HouseValue)
	}
	if config.PresellingDownPayment < 0 || config.LoanDownPayment < 0 || config.OriginationFee < 0 {
		return fmt.Errorf("%w: payments must be non-negative", ErrInvalidConfig)
	}
	if config.LumpSum < 0 {
		return fmt.Errorf("%w: lump sum must be non-negative, got %.2f", ErrInvalidConfig, config.LumpSum)
	}
	if config.LoanTermMonths <= 0 {
		return fmt.Errorf("%w: loan term must be positive, got %d months", ErrInvalidConfig, config.LoanTermMonths)
	}
	if config.LoanInterestRate < 0 || config.PropertyTaxRate < 0 || config.MaintenanceCostRate < 0 {
		return fmt.Errorf("%w: rates must be non-negative", ErrInvalidConfig)
	}
	if len(config.Installments) == 0 {
		return fmt.Errorf("%w: preselling requires at least one installment tier", ErrInvalidConfig)
	}

	// Tiers must cover months 1..N contiguously so every preselling month has
	// exactly one payment.
	next := 1
	for i, tier := range config.Installments {
		if tier.FromMonth != next {
			return fmt.Errorf("%w: installment tier %d starts at month %d, expected %d", ErrInvalidConfig, i, tier.FromMonth, next)
		}
		if tier.ToMonth < tier.FromMonth {
			return fmt.Errorf("%w: installment tier %d ends at month %d before it starts", ErrInvalidConfig, i, tier.ToMonth)
		}
		if tier.Payment < 0 {
			return fmt.Errorf("%w: installment tier %d payment must be non-negative, got %.2f", ErrInvalidConfig, i, tier.Payment)
		}
		next = tier.ToMonth + 1
	}
	return nil
}

// Name returns the variant name.
func (p *Preselling) Name() string { return "Preselling" }

// OwnsProperty reports that the preselling variant accrues property value.
func (p *Preselling) OwnsProperty() bool { return true }

// Schedule returns the cached amortization schedule.
func (p *Preselling) Schedule() *loans.Schedule { return p.schedule }

// Phase returns the current loan lifecycle phase.
func (p *Preselling) Phase() Phase { return p.phase }

// OriginationMonth returns the month at which the bank loan takes over.
func (p *Preselling) OriginationMonth() int { return p.originationMonth }

// Advance computes the cost for the next month. Month 0 is the preselling
// down payment; the installment tiers cover the preselling phase; the first
// month past the last tier is the turnover, where the loan down payment (plus
// any origination fee) is due and the home becomes owned. Fixed schedule
// payments follow for the loan term.
func (p *Preselling) Advance() {
	switch {
	case p.month == 0:
		p.loanCost = p.config.PresellingDownPayment
	case p.month < p.originationMonth:
		p.loanCost = p.installmentFor(p.month)
	case p.month == p.originationMonth:
		p.loanCost = p.config.LoanDownPayment + p.config.OriginationFee
		p.owned = true
		p.phase = PhaseAmortizing
		p.logger.Debug(fmt.Sprintf("month %d: turnover, loan originated for %.2f", p.month, p.schedule.Principal),
			zap.String("op", "housing.Preselling.Advance"),
		)
	case p.month <= p.originationMonth+p.config.LoanTermMonths:
		p.loanCost = p.schedule.MonthlyPayment
	default:
		p.loanCost = 0
		if p.phase != PhaseRetired {
			p.phase = PhaseRetired
			p.logger.Debug(fmt.Sprintf("month %d: preselling loan retired", p.month),
				zap.String("op", "housing.Preselling.Advance"),
			)
		}
	}

	if p.owned {
		p.propertyTax = p.houseValue * p.config.PropertyTaxRate / constants.MonthsPerYear
		p.maintenanceCost = p.houseValue * p.config.MaintenanceCostRate / constants.MonthsPerYear
	} else {
		p.propertyTax = 0
		p.maintenanceCost = 0
	}

	p.month++
}

// installmentFor returns the tiered payment owed in the given preselling
// month. Validation guarantees contiguous tier coverage.
func (p *Preselling) installmentFor(month int) float64 {
	for _, tier := range p.config.Installments {
		if month >= tier.FromMonth && month <= tier.ToMonth {
			return tier.Payment
		}
	}
	return 0
}

// MonthlyCost returns the housing cost computed by the latest Advance.
func (p *Preselling) MonthlyCost() float64 {
	return p.loanCost + p.propertyTax + p.maintenanceCost
}

// AssetValue returns the house value while owned, else 0. During the
// preselling phase the unit has not turned over, so it does not count toward
// net worth yet.
func (p *Preselling) AssetValue() float64 {
	if p.owned {
		return p.houseValue
	}
	return 0
}

// Escalate applies an annual percentage increase to the house value. The
// property appreciates during the preselling phase as well, even though it
// only enters net worth at turnover.
func (p *Preselling) Escalate(pct float64) {
	p.houseValue += p.houseValue * pct
	p.logger.Debug(fmt.Sprintf("house value escalated by %.2f%% to %.2f", pct*100, p.houseValue),
		zap.String("op", "housing.Preselling.Escalate"),
	)
}
