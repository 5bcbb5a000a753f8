package calculation

import (
	"fmt"

	"github.com/fincast/portfolio-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ValidateParameters checks the failure kinds that must be rejected before a
// simulation starts. Everything else (negative balances, implausible ages,
// growth rates beyond [0,1]) is accepted as given.
func ValidateParameters(params *domain.ProjectionParameters) error {
	if params.HorizonYears <= 0 {
		return fmt.Errorf("%w: must cover at least one year, got %d", ErrInvalidHorizon, params.HorizonYears)
	}
	if params.GoalMode.IsSet() {
		if params.MonthlyExpense == nil {
			return fmt.Errorf("%w: goal mode %q requires a monthly expense", ErrMissingExpense, params.GoalMode)
		}
		if params.GoalMode == domain.GoalModeFreedom && params.SafeRate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: freedom mode requires a positive safe rate, got %s", ErrInvalidRate, params.SafeRate)
		}
	}
	return nil
}

// Project simulates the portfolio forward for exactly params.HorizonYears
// years, appending one value per year on top of the starting balance.
//
// Each year runs a two-state machine with an irreversible latch. While
// accumulating, the year grows at the growth rate plus the yearly
// contribution, unless the previous value has reached the goal: that year
// latches into drawdown and the drawdown rule already applies to it. Once
// latched, every remaining year grows at the safe rate minus the annual
// expense, for freedom and pension goals alike, and regardless of the value
// climbing back above the goal or dropping below zero. Values are never
// rounded or clamped here; display rounding belongs to the renderers.
func (pe *ProjectionEngine) Project(params *domain.ProjectionParameters, goal *domain.Goal) (*domain.ProjectionResult, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}
	if goal != nil && params.MonthlyExpense == nil {
		return nil, fmt.Errorf("%w: drawdown toward goal %s requires a monthly expense", ErrMissingExpense, goal.Amount)
	}

	growthFactor := one.Add(params.GrowthRate)
	drawdownFactor := one.Add(params.SafeRate)
	annualExpense := params.AnnualExpense()

	values := make([]decimal.Decimal, 0, params.HorizonYears+1)
	values = append(values, params.InitialValue)
	state := domain.Accumulating()

	for year := 1; year <= params.HorizonYears; year++ {
		prev := values[len(values)-1]

		if !state.DrawingDown() && goal != nil && prev.GreaterThanOrEqual(goal.Amount) {
			state = state.Transition(year)
			pe.Logger.Debugf("goal %s reached entering year %d with balance %s",
				goal.Amount.StringFixed(2), year, prev.StringFixed(2))
		}

		if state.DrawingDown() {
			values = append(values, prev.Mul(drawdownFactor).Sub(annualExpense))
		} else {
			values = append(values, prev.Mul(growthFactor).Add(params.YearlyContribution))
		}
	}

	result := &domain.ProjectionResult{Values: values, Goal: goal}
	if start, ok := state.DrawdownStart(); ok {
		reached := start
		result.GoalReachedYear = &reached
	}
	return result, nil
}
