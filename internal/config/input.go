package config

import (
	"fmt"
	"os"

	"github.com/fincast/portfolio-calculator/internal/calculation"
	"github.com/fincast/portfolio-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.BaseYear == 0 {
		config.BaseYear = domain.DefaultBaseYear
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Beyond the
// engine's own preconditions it enforces the structural rules a scenario file
// must satisfy: named scenarios and non-negative monetary inputs.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.InitialValue.LessThan(decimal.Zero) {
		return fmt.Errorf("initial value cannot be negative")
	}
	if scenario.YearlyContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("yearly contribution cannot be negative")
	}
	if scenario.MonthlyExpense != nil && scenario.MonthlyExpense.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly expense cannot be negative")
	}
	if scenario.GoalMode == domain.GoalModePension && scenario.CurrentAge <= 0 {
		return fmt.Errorf("current age is required for pension mode")
	}
	switch scenario.GoalMode {
	case "", domain.GoalModeNone, domain.GoalModeFreedom, domain.GoalModePension:
	default:
		return fmt.Errorf("goal mode must be %q, %q or %q",
			domain.GoalModeNone, domain.GoalModeFreedom, domain.GoalModePension)
	}

	// The engine rejects these at run time too; failing here points at the
	// offending file before anything is simulated.
	if err := calculation.ValidateParameters(&scenario.ProjectionParameters); err != nil {
		return err
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration covering all
// three goal modes.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	monthlyExpense := decimal.NewFromInt(3000)
	pensionExpense := decimal.NewFromInt(2000)

	return &domain.Configuration{
		BaseYear: domain.DefaultBaseYear,
		Scenarios: []domain.Scenario{
			{
				Name: "Steady Accumulation",
				ProjectionParameters: domain.ProjectionParameters{
					InitialValue:       decimal.NewFromInt(10000),
					YearlyContribution: decimal.NewFromInt(5000),
					GrowthRate:         decimal.NewFromFloat(0.07),
					HorizonYears:       30,
				},
			},
			{
				Name: "Financial Freedom",
				ProjectionParameters: domain.ProjectionParameters{
					InitialValue:       decimal.NewFromInt(150000),
					YearlyContribution: decimal.NewFromInt(30000),
					GrowthRate:         decimal.NewFromFloat(0.07),
					HorizonYears:       40,
					GoalMode:           domain.GoalModeFreedom,
					MonthlyExpense:     &monthlyExpense,
					SafeRate:           decimal.NewFromFloat(0.04),
				},
			},
			{
				Name: "Bridge To Pension",
				ProjectionParameters: domain.ProjectionParameters{
					InitialValue:       decimal.NewFromInt(80000),
					YearlyContribution: decimal.NewFromInt(15000),
					GrowthRate:         decimal.NewFromFloat(0.06),
					HorizonYears:       35,
					GoalMode:           domain.GoalModePension,
					MonthlyExpense:     &pensionExpense,
					SafeRate:           decimal.NewFromFloat(0.03),
					CurrentAge:         45,
				},
			},
		},
	}
}
