package calculation

import (
	"fmt"

	"github.com/fincast/portfolio-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// ComputeGoal derives the target portfolio amount for the requested goal mode.
// It is a pure function of its inputs: a nil goal with a nil error means no
// goal was requested. Ages and rates outside realistic ranges are accepted as
// given; range policing belongs to the caller.
func ComputeGoal(mode domain.GoalMode, monthlyExpense *decimal.Decimal, safeRate decimal.Decimal, currentAge int) (*domain.Goal, error) {
	if !mode.IsSet() {
		return nil, nil
	}
	if monthlyExpense == nil {
		return nil, fmt.Errorf("%w: goal mode %q requires a monthly expense", ErrMissingExpense, mode)
	}
	annualExpense := monthlyExpense.Mul(twelve)

	switch mode {
	case domain.GoalModeFreedom:
		if safeRate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: freedom goal divides by the safe rate, got %s", ErrInvalidRate, safeRate)
		}
		return &domain.Goal{Mode: mode, Amount: annualExpense.Div(safeRate)}, nil

	case domain.GoalModePension:
		yearsToTarget := domain.PensionTargetAge - currentAge
		if yearsToTarget <= 0 {
			// Already at or past the target age: nothing left to fund.
			return &domain.Goal{Mode: mode, Amount: decimal.Zero}, nil
		}
		if safeRate.GreaterThan(decimal.Zero) {
			// Present value of an ordinary annuity paying annualExpense for
			// yearsToTarget years: expense * (1 - (1+r)^-n) / r.
			discount := one.Add(safeRate).Pow(decimal.NewFromInt(int64(-yearsToTarget)))
			amount := annualExpense.Mul(one.Sub(discount)).Div(safeRate)
			return &domain.Goal{Mode: mode, Amount: amount}, nil
		}
		// Zero safe rate degenerates to the undiscounted sum.
		return &domain.Goal{Mode: mode, Amount: annualExpense.Mul(decimal.NewFromInt(int64(yearsToTarget)))}, nil

	default:
		return nil, fmt.Errorf("unknown goal mode %q", mode)
	}
}
