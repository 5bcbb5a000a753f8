package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fincast/portfolio-calculator/internal/config"
	"github.com/fincast/portfolio-calculator/internal/output"
)

var flagForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example scenario configuration file",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if !flagForce {
		if _, err := os.Stat(flagConfig); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", flagConfig)
		}
	}

	example := config.NewInputParser().CreateExampleConfiguration()
	if err := output.SaveConfiguration(example, flagConfig); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	fmt.Printf("Wrote example configuration to %s\n", flagConfig)
	return nil
}
