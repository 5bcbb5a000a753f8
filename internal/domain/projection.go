package domain

import "github.com/shopspring/decimal"

// ProjectionParameters is the complete, explicit input for one projection run.
// The engine holds no state across runs; everything it needs arrives here.
type ProjectionParameters struct {
	InitialValue       decimal.Decimal  `json:"initial_value" yaml:"initial_value"`
	YearlyContribution decimal.Decimal  `json:"yearly_contribution" yaml:"yearly_contribution"`
	GrowthRate         decimal.Decimal  `json:"growth_rate" yaml:"growth_rate"`
	HorizonYears       int              `json:"horizon_years" yaml:"horizon_years"`
	GoalMode           GoalMode         `json:"goal_mode,omitempty" yaml:"goal_mode,omitempty"`
	MonthlyExpense     *decimal.Decimal `json:"monthly_expense,omitempty" yaml:"monthly_expense,omitempty"`
	SafeRate           decimal.Decimal  `json:"safe_rate,omitempty" yaml:"safe_rate,omitempty"`
	CurrentAge         int              `json:"current_age,omitempty" yaml:"current_age,omitempty"`
}

// AnnualExpense returns the yearly withdrawal applied during drawdown.
func (pp *ProjectionParameters) AnnualExpense() decimal.Decimal {
	if pp.MonthlyExpense == nil {
		return decimal.Zero
	}
	return pp.MonthlyExpense.Mul(decimal.NewFromInt(12))
}

// ProjectionResult is the output of one projection run. Values always holds
// HorizonYears+1 amounts with Values[0] equal to the starting balance.
type ProjectionResult struct {
	Values []decimal.Decimal `json:"values"`
	// GoalReachedYear is the smallest 1-based index produced by the drawdown
	// rule; nil when the goal was never reached or no goal was requested.
	GoalReachedYear *int  `json:"goal_reached_year,omitempty"`
	Goal            *Goal `json:"goal,omitempty"`
}

// PhaseOf reports which rule produced Values[i]. Values[0] is the starting
// balance and counts as accumulation.
func (pr *ProjectionResult) PhaseOf(i int) Phase {
	if pr.GoalReachedYear != nil && i >= *pr.GoalReachedYear {
		return PhaseDrawdown
	}
	return PhaseAccumulation
}

// FinalValue returns the last projected amount.
func (pr *ProjectionResult) FinalValue() decimal.Decimal {
	if len(pr.Values) == 0 {
		return decimal.Zero
	}
	return pr.Values[len(pr.Values)-1]
}

// AccumulationYears returns how many simulated years used the accumulation rule.
func (pr *ProjectionResult) AccumulationYears() int {
	years := len(pr.Values) - 1
	if pr.GoalReachedYear != nil {
		years = *pr.GoalReachedYear - 1
	}
	if years < 0 {
		return 0
	}
	return years
}

// ScenarioSummary pairs a projection with the headline metrics the renderers
// show: final value, what was paid in, and the growth on top of it.
type ScenarioSummary struct {
	Name               string               `json:"name"`
	Parameters         ProjectionParameters `json:"parameters"`
	Result             ProjectionResult     `json:"result"`
	FinalValue         decimal.Decimal      `json:"final_value"`
	TotalContributions decimal.Decimal      `json:"total_contributions"`
	TotalGrowth        decimal.Decimal      `json:"total_growth"`
	ReturnPercent      decimal.Decimal      `json:"return_percent"`
}

// ScenarioComparison collects the summaries of all scenarios in a run.
type ScenarioComparison struct {
	BaseYear  int               `json:"base_year"`
	Scenarios []ScenarioSummary `json:"scenarios"`
}
