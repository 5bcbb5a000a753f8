package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/fincast/portfolio-calculator/internal/domain"
)

// PDFFormatter renders the comparison as a printable A4 report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

const pdfContentWidth = 190.0

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(pdfContentWidth, 14, "Portfolio Projection Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(pdfContentWidth, 6,
		fmt.Sprintf("Base year %d - generated %s", results.BaseYear, time.Now().Format("2 January 2006")),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	for i, sc := range results.Scenarios {
		writeScenarioPDF(pdf, results.BaseYear, i+1, &sc)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeScenarioPDF(pdf *fpdf.Fpdf, baseYear, number int, sc *domain.ScenarioSummary) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(240, 244, 250)
	pdf.CellFormat(pdfContentWidth, 9, fmt.Sprintf("Scenario %d: %s", number, sc.Name), "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	metric := func(label, value string) {
		pdf.CellFormat(60, 6, label, "LB", 0, "L", false, 0, "")
		pdf.CellFormat(pdfContentWidth-60, 6, value, "RB", 1, "R", false, 0, "")
	}
	if goal := sc.Result.Goal; goal != nil {
		metric(fmt.Sprintf("Goal (%s)", goal.Mode), FormatCurrency(goal.Amount))
		if sc.Result.GoalReachedYear != nil {
			metric("Goal reached", fmt.Sprintf("year %d (%d)", *sc.Result.GoalReachedYear, baseYear+*sc.Result.GoalReachedYear))
		} else {
			metric("Goal reached", "never")
		}
	}
	metric("Final value", FormatCurrency(sc.FinalValue))
	metric("Total contributions", FormatCurrency(sc.TotalContributions))
	metric("Total growth", FormatCurrency(sc.TotalGrowth))
	metric("Total return", FormatPercentage(sc.ReturnPercent))
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(25, 6, "Year", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 6, "Portfolio Value", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 6, "Annual Change", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 6, "Phase", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, row := range buildYearRows(baseYear, &sc.Result) {
		fill := row.Phase == domain.PhaseDrawdown
		pdf.SetFillColor(253, 243, 231)
		pdf.CellFormat(25, 5.5, intToString(row.CalendarYear), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(55, 5.5, FormatCurrency(row.Value), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(55, 5.5, FormatCurrency(row.Delta), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(55, 5.5, PhaseLabel(row.Phase), "1", 1, "L", fill, 0, "")
	}
	pdf.Ln(6)
}
