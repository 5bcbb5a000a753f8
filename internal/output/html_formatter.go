package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/fincast/portfolio-calculator/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"phase": PhaseLabel,
	"add":   func(i, j int) int { return i + j },
	"rows": func(baseYear int, result domain.ProjectionResult) []yearRow {
		return buildYearRows(baseYear, &result)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
