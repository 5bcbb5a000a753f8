package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fincast/portfolio-calculator/internal/calculation"
)

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Portfolio projection calculator",
	Long: "Project investment portfolio values year by year, compute financial\n" +
		"freedom and pension goals, and render scenario comparisons in several formats.",
	RunE: runProject,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "portfolio.yaml", "Scenario configuration file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print per-year engine breakdowns to stderr")
}

// newEngine builds the engine shared by all commands, wiring the stderr
// logger when --debug is set.
func newEngine() *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	if flagDebug {
		engine.Debug = true
		engine.SetLogger(calculation.WriterLogger{W: os.Stderr})
	}
	return engine
}
