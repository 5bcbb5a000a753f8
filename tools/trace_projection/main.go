package main

import (
	"fmt"
	"os"

	calc "github.com/fincast/portfolio-calculator/internal/calculation"
	"github.com/fincast/portfolio-calculator/internal/config"
	"github.com/fincast/portfolio-calculator/internal/output"
)

// Prints every scenario's year-by-year values side by side as CSV, for
// eyeballing latch years and drawdown slopes without a full report.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: trace_projection <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine := calc.NewProjectionEngine()
	res, err := engine.RunScenarios(cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Find the longest horizon across scenarios
	maxLen := 0
	for _, s := range res.Scenarios {
		if len(s.Result.Values) > maxLen {
			maxLen = len(s.Result.Values)
		}
	}

	header := "Index,Year"
	for i := range res.Scenarios {
		header += fmt.Sprintf(",S%d_Value,S%d_Phase", i+1, i+1)
	}
	fmt.Println(header)

	for i := 0; i < maxLen; i++ {
		row := fmt.Sprintf("%d,%d", i, res.BaseYear+i)
		for _, s := range res.Scenarios {
			if i >= len(s.Result.Values) {
				row += ",,"
				continue
			}
			row += fmt.Sprintf(",%s,%s", s.Result.Values[i].StringFixed(2),
				output.PhaseLabel(s.Result.PhaseOf(i)))
		}
		fmt.Println(row)
	}
}
