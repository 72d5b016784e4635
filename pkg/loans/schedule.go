// Package loans provides fixed-payment amortization schedule generation.
package loans

import (
	"errors"
	"fmt"
	"math"

	"github.com/jgviray/networth-forecast/pkg/constants"
	"github.com/jgviray/networth-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// ErrInvalidScheduleInput indicates schedule inputs that cannot produce a
// valid amortization schedule.
var ErrInvalidScheduleInput = errors.New("invalid schedule input")

// Row holds the values for a single month of an amortization schedule.
// Payment = Interest + Principal up to rounding.
type Row struct {
	Month            int
	Payment          float64
	Interest         float64
	Principal        float64
	RemainingBalance float64
}

// Schedule is a complete fixed-payment amortization schedule. It is immutable
// once built; the housing strategy that originates a loan caches it for the
// life of the loan.
type Schedule struct {
	Principal      float64
	AnnualRate     float64
	TermMonths     int
	MonthlyPayment float64
	Rows           []Row
}

// TotalInterest returns the sum of the interest components across all rows.
func (s *Schedule) TotalInterest() float64 {
	total := 0.0
	for _, row := range s.Rows {
		total += row.Interest
	}
	return total
}

// TotalPaid returns the total cash paid over the life of the loan.
func (s *Schedule) TotalPaid() float64 {
	return s.MonthlyPayment * float64(s.TermMonths)
}

// CalculateMonthlyPayment calculates the fixed monthly payment for a loan
// using the standard annuity formula. The annual rate is a decimal fraction,
// e.g. 0.07 for 7%. A zero rate reduces to an even principal split; the
// general formula's denominator vanishes as the rate approaches zero, so the
// limit form is used directly.
func CalculateMonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if annualRate == 0 {
		return principal / float64(termMonths)
	}

	monthlyRate := annualRate / constants.MonthsPerYear
	return principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(termMonths)))
}

// CalculateInterestPayment calculates the interest portion of a payment
// against the given remaining balance.
func CalculateInterestPayment(remainingBalance, annualRate float64) float64 {
	return remainingBalance * annualRate / constants.MonthsPerYear
}

// ScheduleGenerator produces amortization schedules.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance. A nil logger is
// replaced with a no-op logger so the generator stays silent by default.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// Build creates a complete amortization schedule for the given principal,
// annual rate (decimal fraction), and term in months. Reported row values are
// rounded to schedule precision; the running balance carries full precision so
// rounding error never propagates month to month.
func (g *ScheduleGenerator) Build(principal, annualRate float64, termMonths int) (*Schedule, error) {
	if termMonths <= 0 {
		return nil, fmt.Errorf("%w: term must be positive, got %d months", ErrInvalidScheduleInput, termMonths)
	}
	if principal < 0 {
		return nil, fmt.Errorf("%w: principal must be non-negative, got %.2f", ErrInvalidScheduleInput, principal)
	}
	if annualRate < 0 {
		return nil, fmt.Errorf("%w: annual rate must be non-negative, got %.4f", ErrInvalidScheduleInput, annualRate)
	}

	monthlyPayment := CalculateMonthlyPayment(principal, annualRate, termMonths)

	schedule := &Schedule{
		Principal:      principal,
		AnnualRate:     annualRate,
		TermMonths:     termMonths,
		MonthlyPayment: monthlyPayment,
		Rows:           make([]Row, 0, termMonths),
	}

	balance := principal
	for month := 1; month <= termMonths; month++ {
		interest := CalculateInterestPayment(balance, annualRate)
		principalPaid := monthlyPayment - interest
		balance -= principalPaid

		reportedBalance := mathutil.RoundSchedule(balance)
		if month == termMonths && mathutil.Round(balance) == 0 {
			// The last row accumulates machine error so clamp it to 0.
			reportedBalance = 0
		}

		schedule.Rows = append(schedule.Rows, Row{
			Month:            month,
			Payment:          mathutil.RoundSchedule(monthlyPayment),
			Interest:         mathutil.RoundSchedule(interest),
			Principal:        mathutil.RoundSchedule(principalPaid),
			RemainingBalance: reportedBalance,
		})
	}

	g.logger.Debug(fmt.Sprintf("built amortization schedule: principal %.2f over %d months at %.2f%% for %.2f/month",
		principal, termMonths, annualRate*100, monthlyPayment),
		zap.String("op", "loans.Build"),
		zap.Float64("total_cashout", schedule.TotalPaid()),
	)

	return schedule, nil
}
