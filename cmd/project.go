package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fincast/portfolio-calculator/internal/config"
	"github.com/fincast/portfolio-calculator/internal/output"
)

var (
	flagFormat string
	flagOutput bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run all configured scenarios and print the comparison",
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().StringVarP(&flagFormat, "format", "f", "console", "Output format (console, csv, json, html, pdf)")
	projectCmd.Flags().BoolVarP(&flagOutput, "output", "o", false, "Write a timestamped report file instead of printing")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(flagConfig)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	results, err := newEngine().RunScenarios(cfg)
	if err != nil {
		return fmt.Errorf("running scenarios: %w", err)
	}

	if flagOutput {
		return output.GenerateReport(results, flagFormat)
	}

	f := output.GetFormatterByName(flagFormat)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, flagFormat)
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
