// Package housing provides month-indexed cost strategies for alternative
// housing-financing approaches: owning with a mortgage, owning through a
// preselling arrangement, and renting.
package housing

import "errors"

// ErrInvalidConfig indicates housing strategy parameters that cannot produce
// a valid cost state machine.
var ErrInvalidConfig = errors.New("invalid housing config")

// Phase identifies where a financed purchase sits in its loan lifecycle.
type Phase int

// Loan lifecycle phases.
const (
	// PhasePreOrigination covers the months before the loan schedule takes
	// effect (the down-payment month, and for preselling the installment
	// tiers).
	PhasePreOrigination Phase = iota

	// PhaseAmortizing covers the months serviced by the amortization schedule.
	PhaseAmortizing

	// PhaseRetired covers the months after the loan has been fully paid.
	PhaseRetired
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePreOrigination:
		return "pre-origination"
	case PhaseAmortizing:
		return "amortizing"
	case PhaseRetired:
		return "retired"
	default:
		return "unknown"
	}
}

// Strategy is the uniform interface over housing-financing variants. Each
// strategy owns its own month counter and amortization schedule; instances
// must not be shared between concurrent projections.
type Strategy interface {
	// Name returns the variant name.
	Name() string

	// Advance moves the strategy forward by one simulated month, updating
	// the cost components for that month. The internal month counter is
	// 0-based; the first call computes the month-0 cost.
	Advance()

	// MonthlyCost returns the housing cost computed by the latest Advance.
	MonthlyCost() float64

	// AssetValue returns the current house value while the home is owned,
	// and 0 otherwise.
	AssetValue() float64

	// Escalate applies an annual percentage increase to the strategy's
	// escalating value (house value for owning variants, rent for renting).
	Escalate(pct float64)

	// OwnsProperty reports whether the variant accrues property value. It is
	// constant per variant and drives which growth rate the projection
	// engine escalates with.
	OwnsProperty() bool
}
