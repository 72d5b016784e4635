package housing

import (
	"fmt"

	"go.uber.org/zap"
)

// RentConfig holds the immutable inputs for renting.
type RentConfig struct {
	Rent float64
}

// Rent is the renting strategy: a flat monthly rent, no asset, no loan.
type Rent struct {
	logger *zap.Logger

	rent  float64
	month int
}

// NewRent creates a rent strategy.
func NewRent(config RentConfig, logger *zap.Logger) (*Rent, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Rent < 0 {
		return nil, fmt.Errorf("%w: rent must be non-negative, got %.2f", ErrInvalidConfig, config.Rent)
	}

	r := &Rent{logger: logger, rent: config.Rent}
	logger.Debug(fmt.Sprintf("rent strategy: %.2f/month", config.Rent),
		zap.String("op", "housing.NewRent"),
	)
	return r, nil
}

// Name returns the variant name.
func (r *Rent) Name() string { return "Rent" }

// OwnsProperty reports that renting accrues no property value.
func (r *Rent) OwnsProperty() bool { return false }

// Advance moves the strategy forward by one month. Rent has no phase
// transitions; only the month counter moves.
func (r *Rent) Advance() {
	r.month++
}

// MonthlyCost returns the current rent.
func (r *Rent) MonthlyCost() float64 { return r.rent }

// AssetValue returns 0; renting contributes no asset to net worth.
func (r *Rent) AssetValue() float64 { return 0 }

// Escalate applies an annual percentage increase to the rent.
func (r *Rent) Escalate(pct float64) {
	r.rent += r.rent * pct
	r.logger.Debug(fmt.Sprintf("rent escalated by %.2f%% to %.2f", pct*100, r.rent),
		zap.String("op", "housing.Rent.Escalate"),
	)
}
