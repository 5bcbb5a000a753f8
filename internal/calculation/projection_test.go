package calculation

import (
	"testing"

	"github.com/fincast/portfolio-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accumulationParams() *domain.ProjectionParameters {
	return &domain.ProjectionParameters{
		InitialValue:       decimal.NewFromInt(10000),
		YearlyContribution: decimal.NewFromInt(5000),
		GrowthRate:         decimal.NewFromFloat(0.07),
		HorizonYears:       3,
	}
}

func TestProject_PureAccumulation(t *testing.T) {
	engine := NewProjectionEngine()
	result, err := engine.Project(accumulationParams(), nil)
	require.NoError(t, err)

	// Each year is prev*1.07 + 5000.
	expected := []string{"10000", "15700", "21799", "28324.93"}
	require.Len(t, result.Values, 4)
	for i, want := range expected {
		assert.True(t, result.Values[i].Equal(decimal.RequireFromString(want)),
			"year %d: expected %s, got %s", i, want, result.Values[i])
	}
	assert.Nil(t, result.GoalReachedYear)
	assert.Nil(t, result.Goal)
}

func TestProject_LengthAndStartingValue(t *testing.T) {
	engine := NewProjectionEngine()
	for _, horizon := range []int{1, 10, 50, 200} {
		params := accumulationParams()
		params.HorizonYears = horizon
		result, err := engine.Project(params, nil)
		require.NoError(t, err)
		assert.Len(t, result.Values, horizon+1)
		assert.True(t, result.Values[0].Equal(params.InitialValue))
	}
}

func TestProject_AllZerosStayZero(t *testing.T) {
	engine := NewProjectionEngine()
	params := &domain.ProjectionParameters{HorizonYears: 10}
	result, err := engine.Project(params, nil)
	require.NoError(t, err)

	require.Len(t, result.Values, 11)
	for i, v := range result.Values {
		assert.True(t, v.IsZero(), "year %d: expected 0, got %s", i, v)
	}
}

func TestProject_GoalAlreadyReachedAtStart(t *testing.T) {
	// Start exactly at the freedom goal: drawdown from year one, and the
	// perpetuity withdrawal holds the balance constant.
	monthly := decimal.NewFromInt(3000)
	params := &domain.ProjectionParameters{
		InitialValue:       decimal.NewFromInt(900000),
		YearlyContribution: decimal.NewFromInt(10000),
		GrowthRate:         decimal.NewFromFloat(0.07),
		HorizonYears:       5,
		GoalMode:           domain.GoalModeFreedom,
		MonthlyExpense:     &monthly,
		SafeRate:           decimal.NewFromFloat(0.04),
	}
	goal := &domain.Goal{Mode: domain.GoalModeFreedom, Amount: decimal.NewFromInt(900000)}

	engine := NewProjectionEngine()
	result, err := engine.Project(params, goal)
	require.NoError(t, err)

	require.NotNil(t, result.GoalReachedYear)
	assert.Equal(t, 1, *result.GoalReachedYear)
	for i, v := range result.Values {
		assert.True(t, v.Equal(decimal.NewFromInt(900000)),
			"year %d: expected 900000, got %s", i, v)
	}
}

func TestProject_TransitionAndMonotonicity(t *testing.T) {
	// Doubles every year until 500 is reached, then draws down 120/year at a
	// zero safe rate. The balance drops back below the goal and must stay in
	// drawdown anyway.
	monthly := decimal.NewFromInt(10)
	params := &domain.ProjectionParameters{
		InitialValue:   decimal.NewFromInt(100),
		GrowthRate:     decimal.NewFromInt(1),
		HorizonYears:   8,
		GoalMode:       domain.GoalModePension,
		MonthlyExpense: &monthly,
		SafeRate:       decimal.Zero,
	}
	goal := &domain.Goal{Mode: domain.GoalModePension, Amount: decimal.NewFromInt(500)}

	engine := NewProjectionEngine()
	result, err := engine.Project(params, goal)
	require.NoError(t, err)

	require.NotNil(t, result.GoalReachedYear)
	reached := *result.GoalReachedYear
	assert.Equal(t, 4, reached)

	growthFactor := one.Add(params.GrowthRate)
	drawdownFactor := one.Add(params.SafeRate)
	annualExpense := params.AnnualExpense()

	// Re-derive every year from the rule its phase dictates.
	for i := 1; i < len(result.Values); i++ {
		prev := result.Values[i-1]
		var want decimal.Decimal
		if i >= reached {
			want = prev.Mul(drawdownFactor).Sub(annualExpense)
			assert.Equal(t, domain.PhaseDrawdown, result.PhaseOf(i))
		} else {
			want = prev.Mul(growthFactor).Add(params.YearlyContribution)
			assert.Equal(t, domain.PhaseAccumulation, result.PhaseOf(i))
		}
		assert.True(t, result.Values[i].Equal(want),
			"year %d: expected %s, got %s", i, want, result.Values[i])
	}

	// Sanity: the tail fell below the goal without reverting.
	assert.True(t, result.FinalValue().LessThan(goal.Amount))
}

func TestProject_NegativeValuesNotClamped(t *testing.T) {
	// A zero goal latches immediately and the expense drives the balance
	// negative; the arithmetic is left untouched.
	monthly := decimal.NewFromInt(3000)
	params := &domain.ProjectionParameters{
		HorizonYears:   3,
		GoalMode:       domain.GoalModePension,
		MonthlyExpense: &monthly,
		SafeRate:       decimal.NewFromFloat(0.04),
		CurrentAge:     70,
	}
	goal := &domain.Goal{Mode: domain.GoalModePension, Amount: decimal.Zero}

	engine := NewProjectionEngine()
	result, err := engine.Project(params, goal)
	require.NoError(t, err)

	require.NotNil(t, result.GoalReachedYear)
	assert.Equal(t, 1, *result.GoalReachedYear)
	assert.True(t, result.Values[1].Equal(decimal.NewFromInt(-36000)))
	assert.True(t, result.Values[2].LessThan(result.Values[1]))
	assert.True(t, result.Values[3].LessThan(result.Values[2]))
}

func TestProject_Idempotent(t *testing.T) {
	monthly := decimal.NewFromInt(2500)
	params := &domain.ProjectionParameters{
		InitialValue:       decimal.NewFromInt(50000),
		YearlyContribution: decimal.NewFromInt(20000),
		GrowthRate:         decimal.NewFromFloat(0.07),
		HorizonYears:       40,
		GoalMode:           domain.GoalModeFreedom,
		MonthlyExpense:     &monthly,
		SafeRate:           decimal.NewFromFloat(0.04),
	}
	goal, err := ComputeGoal(params.GoalMode, params.MonthlyExpense, params.SafeRate, params.CurrentAge)
	require.NoError(t, err)

	engine := NewProjectionEngine()
	first, err := engine.Project(params, goal)
	require.NoError(t, err)
	second, err := engine.Project(params, goal)
	require.NoError(t, err)

	require.Equal(t, len(first.Values), len(second.Values))
	for i := range first.Values {
		assert.True(t, first.Values[i].Equal(second.Values[i]), "year %d differs", i)
	}
}

func TestProject_InvalidHorizon(t *testing.T) {
	engine := NewProjectionEngine()
	for _, horizon := range []int{0, -5} {
		params := accumulationParams()
		params.HorizonYears = horizon
		result, err := engine.Project(params, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidHorizon)
		assert.Nil(t, result)
	}
}

func TestProject_FreedomZeroRateRejected(t *testing.T) {
	monthly := decimal.NewFromInt(3000)
	params := &domain.ProjectionParameters{
		InitialValue:   decimal.NewFromInt(10000),
		HorizonYears:   10,
		GoalMode:       domain.GoalModeFreedom,
		MonthlyExpense: &monthly,
		SafeRate:       decimal.Zero,
	}

	engine := NewProjectionEngine()
	result, err := engine.Project(params, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRate)
	assert.Nil(t, result)
}

func TestProject_GoalWithoutExpenseRejected(t *testing.T) {
	params := accumulationParams()
	goal := &domain.Goal{Mode: domain.GoalModeFreedom, Amount: decimal.NewFromInt(900000)}

	engine := NewProjectionEngine()
	result, err := engine.Project(params, goal)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingExpense)
	assert.Nil(t, result)
}

func TestValidateParameters(t *testing.T) {
	monthly := decimal.NewFromInt(100)
	tests := []struct {
		name    string
		params  domain.ProjectionParameters
		wantErr error
	}{
		{
			name:   "plain accumulation",
			params: domain.ProjectionParameters{HorizonYears: 1},
		},
		{
			name:    "zero horizon",
			params:  domain.ProjectionParameters{},
			wantErr: ErrInvalidHorizon,
		},
		{
			name:    "goal without expense",
			params:  domain.ProjectionParameters{HorizonYears: 5, GoalMode: domain.GoalModePension},
			wantErr: ErrMissingExpense,
		},
		{
			name: "freedom with negative rate",
			params: domain.ProjectionParameters{
				HorizonYears:   5,
				GoalMode:       domain.GoalModeFreedom,
				MonthlyExpense: &monthly,
				SafeRate:       decimal.NewFromFloat(-0.01),
			},
			wantErr: ErrInvalidRate,
		},
		{
			name: "pension with zero rate is fine",
			params: domain.ProjectionParameters{
				HorizonYears:   5,
				GoalMode:       domain.GoalModePension,
				MonthlyExpense: &monthly,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParameters(&tt.params)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
