package output

import (
	"bytes"
	"encoding/csv"

	"github.com/fincast/portfolio-calculator/internal/domain"
)

// CSVExporter writes one row per projected year across all scenarios.
type CSVExporter struct{}

func (c CSVExporter) Name() string { return "csv" }

func (c CSVExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Scenario", "YearIndex", "CalendarYear", "PortfolioValue", "AnnualChange", "Phase"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, sc := range results.Scenarios {
		for _, row := range buildYearRows(results.BaseYear, &sc.Result) {
			record := []string{
				sc.Name,
				intToString(row.Index),
				intToString(row.CalendarYear),
				row.Value.StringFixed(2),
				row.Delta.StringFixed(2),
				PhaseLabel(row.Phase),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
