package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fincast/portfolio-calculator/internal/domain"
)

// ConsoleFormatter renders the per-scenario metrics and the year-by-year
// breakdown table as plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "PORTFOLIO PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Base Year: %d\n", results.BaseYear)
	fmt.Fprintln(&buf)

	for i, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))

		if goal := sc.Result.Goal; goal != nil {
			fmt.Fprintf(&buf, "Goal (%s):           %s\n", goal.Mode, FormatCurrency(goal.Amount))
			if sc.Result.GoalReachedYear != nil {
				fmt.Fprintf(&buf, "Goal Reached:        year %d (%d)\n",
					*sc.Result.GoalReachedYear, results.BaseYear+*sc.Result.GoalReachedYear)
			} else {
				fmt.Fprintln(&buf, "Goal Reached:        never")
			}
		}
		fmt.Fprintf(&buf, "Final Value:         %s\n", FormatCurrency(sc.FinalValue))
		fmt.Fprintf(&buf, "Total Contributions: %s\n", FormatCurrency(sc.TotalContributions))
		fmt.Fprintf(&buf, "Total Growth:        %s\n", FormatCurrency(sc.TotalGrowth))
		fmt.Fprintf(&buf, "Total Return:        %s\n", FormatPercentage(sc.ReturnPercent))
		fmt.Fprintln(&buf)

		fmt.Fprintln(&buf, "YEAR-BY-YEAR BREAKDOWN:")
		fmt.Fprintf(&buf, "%-6s %18s %18s  %s\n", "Year", "Portfolio Value", "Annual Change", "Phase")
		fmt.Fprintln(&buf, strings.Repeat("-", 60))
		for _, row := range buildYearRows(results.BaseYear, &sc.Result) {
			fmt.Fprintf(&buf, "%-6d %18s %18s  %s\n",
				row.CalendarYear,
				FormatCurrency(row.Value),
				FormatCurrency(row.Delta),
				PhaseLabel(row.Phase),
			)
		}
		fmt.Fprintln(&buf)
	}

	return buf.Bytes(), nil
}
