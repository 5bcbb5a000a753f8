package calculation

import (
	"context"
	"fmt"

	"github.com/fincast/portfolio-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectionEngine orchestrates goal computation and year-by-year simulation.
// It is stateless between calls and safe for concurrent use.
type ProjectionEngine struct {
	Debug  bool // Enable debug output for per-run breakdowns
	Logger Logger
}

// NewProjectionEngine creates a new projection engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunScenario computes the scenario's goal, projects it forward and derives
// the summary metrics the renderers show.
func (pe *ProjectionEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	goal, err := ComputeGoal(scenario.GoalMode, scenario.MonthlyExpense, scenario.SafeRate, scenario.CurrentAge)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	result, err := pe.Project(&scenario.ProjectionParameters, goal)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	summary := summarize(scenario.Name, &scenario.ProjectionParameters, result)

	if pe.Debug {
		pe.Logger.Debugf("SCENARIO %q BREAKDOWN:", scenario.Name)
		pe.Logger.Debugf("  Initial Value:       $%s", scenario.InitialValue.StringFixed(2))
		if goal != nil {
			pe.Logger.Debugf("  Goal (%s):      $%s", goal.Mode, goal.Amount.StringFixed(2))
		}
		if result.GoalReachedYear != nil {
			pe.Logger.Debugf("  Goal Reached Year:   %d", *result.GoalReachedYear)
		}
		pe.Logger.Debugf("  Final Value:         $%s", summary.FinalValue.StringFixed(2))
		pe.Logger.Debugf("  Total Contributions: $%s", summary.TotalContributions.StringFixed(2))
		pe.Logger.Debugf("  Total Growth:        $%s", summary.TotalGrowth.StringFixed(2))
	}

	return summary, nil
}

// RunScenarios runs every scenario in the configuration and returns a comparison.
func (pe *ProjectionEngine) RunScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	ctx := context.Background()

	baseYear := config.BaseYear
	if baseYear == 0 {
		baseYear = domain.DefaultBaseYear
	}

	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		summary, err := pe.RunScenario(ctx, &scenario)
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		scenarios[i] = *summary
	}

	return &domain.ScenarioComparison{
		BaseYear:  baseYear,
		Scenarios: scenarios,
	}, nil
}

// summarize derives the headline metrics. Contributions count the starting
// balance plus one yearly contribution per accumulation year; the drawdown
// years pay in nothing.
func summarize(name string, params *domain.ProjectionParameters, result *domain.ProjectionResult) *domain.ScenarioSummary {
	accumYears := decimal.NewFromInt(int64(result.AccumulationYears()))
	contributions := params.InitialValue.Add(params.YearlyContribution.Mul(accumYears))
	final := result.FinalValue()
	growth := final.Sub(contributions)

	returnPct := decimal.Zero
	if contributions.GreaterThan(decimal.Zero) {
		returnPct = growth.Div(contributions).Mul(decimal.NewFromInt(100))
	}

	return &domain.ScenarioSummary{
		Name:               name,
		Parameters:         *params,
		Result:             *result,
		FinalValue:         final,
		TotalContributions: contributions,
		TotalGrowth:        growth,
		ReturnPercent:      returnPct,
	}
}
