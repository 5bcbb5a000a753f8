package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProjectionParameters_AnnualExpense(t *testing.T) {
	expense := decimal.NewFromInt(3000)
	params := ProjectionParameters{MonthlyExpense: &expense}
	assert.True(t, params.AnnualExpense().Equal(decimal.NewFromInt(36000)))

	var noExpense ProjectionParameters
	assert.True(t, noExpense.AnnualExpense().IsZero())
}

func TestProjectionResult_PhaseOf(t *testing.T) {
	year := 3
	result := ProjectionResult{
		Values: []decimal.Decimal{
			decimal.NewFromInt(100), decimal.NewFromInt(110),
			decimal.NewFromInt(121), decimal.NewFromInt(90), decimal.NewFromInt(60),
		},
		GoalReachedYear: &year,
	}

	assert.Equal(t, PhaseAccumulation, result.PhaseOf(0))
	assert.Equal(t, PhaseAccumulation, result.PhaseOf(2))
	assert.Equal(t, PhaseDrawdown, result.PhaseOf(3))
	assert.Equal(t, PhaseDrawdown, result.PhaseOf(4))
}

func TestProjectionResult_PhaseOf_NoGoal(t *testing.T) {
	result := ProjectionResult{Values: []decimal.Decimal{decimal.Zero, decimal.Zero}}
	assert.Equal(t, PhaseAccumulation, result.PhaseOf(1))
}

func TestProjectionResult_AccumulationYears(t *testing.T) {
	values := make([]decimal.Decimal, 11)
	result := ProjectionResult{Values: values}
	assert.Equal(t, 10, result.AccumulationYears())

	year := 4
	result.GoalReachedYear = &year
	assert.Equal(t, 3, result.AccumulationYears())

	first := 1
	result.GoalReachedYear = &first
	assert.Equal(t, 0, result.AccumulationYears())
}

func TestGoalMode_IsSet(t *testing.T) {
	assert.False(t, GoalMode("").IsSet())
	assert.False(t, GoalModeNone.IsSet())
	assert.True(t, GoalModeFreedom.IsSet())
	assert.True(t, GoalModePension.IsSet())
}
