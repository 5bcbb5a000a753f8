package output

import (
	"strconv"

	"github.com/fincast/portfolio-calculator/internal/domain"
	"github.com/fincast/portfolio-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency rounded to cents.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FromDecimal(amount).Round().Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// PhaseLabel is the human-readable label renderers show for a projected year.
func PhaseLabel(phase domain.Phase) string {
	switch phase {
	case domain.PhaseDrawdown:
		return "drawdown"
	default:
		return "accumulation"
	}
}

func intToString(i int) string { return strconv.Itoa(i) }

// yearRow is one line of the year-by-year table shared by the console, CSV
// and PDF formatters: calendar year, value, delta against the prior year and
// the phase that produced it. Row 0 carries a zero delta.
type yearRow struct {
	Index        int
	CalendarYear int
	Value        decimal.Decimal
	Delta        decimal.Decimal
	Phase        domain.Phase
}

func buildYearRows(baseYear int, result *domain.ProjectionResult) []yearRow {
	rows := make([]yearRow, len(result.Values))
	for i, v := range result.Values {
		delta := decimal.Zero
		if i > 0 {
			delta = v.Sub(result.Values[i-1])
		}
		rows[i] = yearRow{
			Index:        i,
			CalendarYear: baseYear + i,
			Value:        v,
			Delta:        delta,
			Phase:        result.PhaseOf(i),
		}
	}
	return rows
}
